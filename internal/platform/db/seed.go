package db

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var seedFirstNames = []string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda",
	"William", "Barbara", "David", "Elizabeth", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen",
}

var seedLastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
	"Taylor", "Moore", "Jackson", "Martin",
}

var seedDepartments = []string{
	"Engineering", "Marketing", "Sales", "Human Resources", "Finance",
	"Operations", "Customer Support", "Product Management", "Design", "Legal",
}

// Seed inserts demo employees plus a week of attendance for each. It is
// idempotent: a non-empty employees table means seeding already happened.
func Seed(ctx context.Context, pool *pgxpool.Pool, count int) error {
	var existing int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM employees").Scan(&existing); err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	today := time.Now()

	for i := 1; i <= count; i++ {
		first := seedFirstNames[rng.Intn(len(seedFirstNames))]
		last := seedLastNames[rng.Intn(len(seedLastNames))]
		code := fmt.Sprintf("EMP-%04d", i)
		email := fmt.Sprintf("%s.%s%d@company.com", strings.ToLower(first), strings.ToLower(last), i)
		department := seedDepartments[rng.Intn(len(seedDepartments))]

		var employeeDBID int64
		err := pool.QueryRow(ctx, `
      INSERT INTO employees (employee_id, full_name, email, department)
      VALUES ($1, $2, $3, $4)
      RETURNING id
    `, code, first+" "+last, email, department).Scan(&employeeDBID)
		if err != nil {
			return err
		}

		for day := 0; day < 7; day++ {
			status := "PRESENT"
			if rng.Float64() < 0.15 {
				status = "ABSENT"
			}
			date := today.AddDate(0, 0, -day).Format("2006-01-02")
			if _, err := pool.Exec(ctx, `
        INSERT INTO attendance (employee_id, date, status)
        VALUES ($1, $2::date, $3)
        ON CONFLICT (employee_id, date) DO NOTHING
      `, employeeDBID, date, status); err != nil {
				return err
			}
		}
	}

	return nil
}

package employee

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const employeeColumns = `id, employee_id, full_name, email, department, created_at, updated_at`

func (s *Store) ListEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    ORDER BY employee_id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]Employee, 0)
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(&emp.ID, &emp.EmployeeID, &emp.FullName, &emp.Email, &emp.Department, &emp.CreatedAt, &emp.UpdatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (s *Store) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE id = $1
  `, id)
	return scanEmployee(row)
}

func (s *Store) GetEmployeeByCode(ctx context.Context, code string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE employee_id = $1
  `, code)
	return scanEmployee(row)
}

func scanEmployee(row pgx.Row) (*Employee, error) {
	var emp Employee
	err := row.Scan(&emp.ID, &emp.EmployeeID, &emp.FullName, &emp.Email, &emp.Department, &emp.CreatedAt, &emp.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) ListCodes(ctx context.Context) ([]string, error) {
	rows, err := s.DB.Query(ctx, `SELECT employee_id FROM employees`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

func (s *Store) InsertEmployee(ctx context.Context, input CreateInput) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO employees (employee_id, full_name, email, department)
    VALUES ($1, $2, $3, $4)
    RETURNING `+employeeColumns+`
  `, input.EmployeeID, input.FullName, input.Email, input.Department)

	var emp Employee
	if err := row.Scan(&emp.ID, &emp.EmployeeID, &emp.FullName, &emp.Email, &emp.Department, &emp.CreatedAt, &emp.UpdatedAt); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, emp *Employee) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET full_name = $2, email = $3, department = $4, updated_at = now()
    WHERE id = $1
  `, emp.ID, emp.FullName, emp.Email, emp.Department)
	return err
}

func (s *Store) DeleteEmployee(ctx context.Context, id int64) (bool, error) {
	tag, err := s.DB.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

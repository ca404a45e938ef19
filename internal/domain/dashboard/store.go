package dashboard

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) EmployeeCount(ctx context.Context) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, `SELECT COUNT(1) FROM employees`).Scan(&count)
	return count, err
}

func (s *Store) TodayCountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM attendance
    WHERE date = CURRENT_DATE AND status = $1
  `, status).Scan(&count)
	return count, err
}

func (s *Store) AttendanceCount(ctx context.Context) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, `SELECT COUNT(1) FROM attendance`).Scan(&count)
	return count, err
}

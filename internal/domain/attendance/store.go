package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dateLayout = "2006-01-02"

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListRecords(ctx context.Context, startDate, endDate string) ([]Record, error) {
	query := `
    SELECT a.id, a.employee_id, a.date, a.status, a.created_at, a.updated_at,
           e.full_name, e.employee_id
    FROM attendance a
    JOIN employees e ON e.id = a.employee_id
    WHERE ($1 = '' OR a.date >= $1::date)
      AND ($2 = '' OR a.date <= $2::date)
    ORDER BY a.date DESC, a.id DESC
  `
	rows, err := s.DB.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

func (s *Store) ListByEmployee(ctx context.Context, employeeDBID int64) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT a.id, a.employee_id, a.date, a.status, a.created_at, a.updated_at,
           e.full_name, e.employee_id
    FROM attendance a
    JOIN employees e ON e.id = a.employee_id
    WHERE a.employee_id = $1
    ORDER BY a.date DESC
  `, employeeDBID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

// collectRecords scans joined rows carrying the employee name and code.
func collectRecords(rows pgx.Rows) ([]Record, error) {
	records := make([]Record, 0)
	for rows.Next() {
		var rec Record
		var date time.Time
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &date, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName, &rec.EmployeeCode); err != nil {
			return nil, err
		}
		rec.Date = date.Format(dateLayout)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) GetRecord(ctx context.Context, id int64) (*Record, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, date, status, created_at, updated_at
    FROM attendance
    WHERE id = $1
  `, id)
	return scanRecord(row)
}

func (s *Store) FindByEmployeeAndDate(ctx context.Context, employeeDBID int64, date string) (*Record, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, date, status, created_at, updated_at
    FROM attendance
    WHERE employee_id = $1 AND date = $2::date
  `, employeeDBID, date)
	return scanRecord(row)
}

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	var date time.Time
	err := row.Scan(&rec.ID, &rec.EmployeeID, &date, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	rec.Date = date.Format(dateLayout)
	return &rec, nil
}

func (s *Store) InsertRecord(ctx context.Context, employeeDBID int64, date, status string) (*Record, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO attendance (employee_id, date, status)
    VALUES ($1, $2::date, $3)
    RETURNING id, employee_id, date, status, created_at, updated_at
  `, employeeDBID, date, status)
	return scanRecord(row)
}

func (s *Store) UpdateRecord(ctx context.Context, rec *Record) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE attendance
    SET date = $2::date, status = $3, updated_at = now()
    WHERE id = $1
  `, rec.ID, rec.Date, rec.Status)
	return err
}

func (s *Store) DeleteRecord(ctx context.Context, id int64) (bool, error) {
	tag, err := s.DB.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Summary aggregates present/absent day counts per employee in one query;
// employees without records appear with zeros.
func (s *Store) Summary(ctx context.Context) ([]SummaryRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT e.employee_id,
           e.full_name,
           COUNT(a.id),
           COUNT(a.id) FILTER (WHERE a.status = 'PRESENT'),
           COUNT(a.id) FILTER (WHERE a.status = 'ABSENT')
    FROM employees e
    LEFT JOIN attendance a ON a.employee_id = e.id
    GROUP BY e.id, e.employee_id, e.full_name
    ORDER BY e.employee_id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := make([]SummaryRow, 0)
	for rows.Next() {
		var row SummaryRow
		if err := rows.Scan(&row.EmployeeID, &row.EmployeeName, &row.TotalDays, &row.TotalPresentDays, &row.TotalAbsentDays); err != nil {
			return nil, err
		}
		summary = append(summary, row)
	}
	return summary, rows.Err()
}

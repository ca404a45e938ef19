package attendance

import "context"

type StoreAPI interface {
	ListRecords(ctx context.Context, startDate, endDate string) ([]Record, error)
	ListByEmployee(ctx context.Context, employeeDBID int64) ([]Record, error)
	GetRecord(ctx context.Context, id int64) (*Record, error)
	FindByEmployeeAndDate(ctx context.Context, employeeDBID int64, date string) (*Record, error)
	InsertRecord(ctx context.Context, employeeDBID int64, date, status string) (*Record, error)
	UpdateRecord(ctx context.Context, rec *Record) error
	DeleteRecord(ctx context.Context, id int64) (bool, error)
	Summary(ctx context.Context) ([]SummaryRow, error)
}

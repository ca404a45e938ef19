package employee

import "context"

type StoreAPI interface {
	ListEmployees(ctx context.Context) ([]Employee, error)
	GetEmployee(ctx context.Context, id int64) (*Employee, error)
	GetEmployeeByCode(ctx context.Context, code string) (*Employee, error)
	ListCodes(ctx context.Context) ([]string, error)
	InsertEmployee(ctx context.Context, input CreateInput) (*Employee, error)
	UpdateEmployee(ctx context.Context, emp *Employee) error
	DeleteEmployee(ctx context.Context, id int64) (bool, error)
}

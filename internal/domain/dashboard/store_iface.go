package dashboard

import "context"

type StoreAPI interface {
	EmployeeCount(ctx context.Context) (int, error)
	TodayCountByStatus(ctx context.Context, status string) (int, error)
	AttendanceCount(ctx context.Context) (int, error)
}

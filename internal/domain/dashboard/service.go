package dashboard

import (
	"context"

	"hrmlite/internal/domain/attendance"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	total, err := s.store.EmployeeCount(ctx)
	if err != nil {
		return nil, err
	}
	present, err := s.store.TodayCountByStatus(ctx, attendance.StatusPresent)
	if err != nil {
		return nil, err
	}
	absent, err := s.store.TodayCountByStatus(ctx, attendance.StatusAbsent)
	if err != nil {
		return nil, err
	}
	records, err := s.store.AttendanceCount(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{
		TotalEmployees:         total,
		PresentToday:           present,
		AbsentToday:            absent,
		TotalAttendanceRecords: records,
	}, nil
}

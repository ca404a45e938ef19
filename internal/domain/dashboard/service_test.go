package dashboard

import (
	"context"
	"errors"
	"testing"

	"hrmlite/internal/domain/attendance"
)

type fakeStore struct {
	employees int
	present   int
	absent    int
	records   int
	countErr  error
}

func (f *fakeStore) EmployeeCount(ctx context.Context) (int, error) {
	return f.employees, f.countErr
}

func (f *fakeStore) TodayCountByStatus(ctx context.Context, status string) (int, error) {
	if status == attendance.StatusPresent {
		return f.present, nil
	}
	return f.absent, nil
}

func (f *fakeStore) AttendanceCount(ctx context.Context) (int, error) {
	return f.records, nil
}

func TestStats(t *testing.T) {
	service := NewService(&fakeStore{employees: 10, present: 7, absent: 2, records: 150})

	stats, err := service.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	want := Stats{TotalEmployees: 10, PresentToday: 7, AbsentToday: 2, TotalAttendanceRecords: 150}
	if *stats != want {
		t.Fatalf("Stats = %+v, want %+v", *stats, want)
	}
}

func TestStatsPropagatesStoreError(t *testing.T) {
	boom := errors.New("db down")
	service := NewService(&fakeStore{countErr: boom})

	if _, err := service.Stats(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want the store error", err)
	}
}

package attendance

import (
	"context"
	"fmt"

	"hrmlite/internal/domain/employee"
)

type Service struct {
	store    StoreAPI
	empStore employee.StoreAPI
}

func NewService(store StoreAPI, empStore employee.StoreAPI) *Service {
	return &Service{store: store, empStore: empStore}
}

// Mark records attendance for the employee referenced by business code,
// rejecting a second record for the same (employee, date).
func (s *Service) Mark(ctx context.Context, input MarkInput) (*Record, error) {
	emp, err := s.empStore.GetEmployeeByCode(ctx, input.EmployeeCode)
	if err != nil {
		if err == employee.ErrNotFound {
			return nil, fmt.Errorf("employee '%s' not found: %w", input.EmployeeCode, employee.ErrNotFound)
		}
		return nil, err
	}

	existing, err := s.store.FindByEmployeeAndDate(ctx, emp.ID, input.Date)
	if err != nil && err != ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("attendance for employee '%s' on %s is already recorded as '%s': %w",
			input.EmployeeCode, input.Date, existing.Status, ErrAlreadyMarked)
	}

	return s.store.InsertRecord(ctx, emp.ID, input.Date, input.Status)
}

func (s *Service) List(ctx context.Context, startDate, endDate string) ([]Record, error) {
	return s.store.ListRecords(ctx, startDate, endDate)
}

// ListByEmployeeCode resolves the code first so an unknown employee is a
// not-found error rather than an empty list.
func (s *Service) ListByEmployeeCode(ctx context.Context, code string) ([]Record, error) {
	emp, err := s.empStore.GetEmployeeByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.store.ListByEmployee(ctx, emp.ID)
}

// Update applies only the supplied fields. A date change re-checks the
// one-record-per-day rule; a status-only change does not.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (*Record, error) {
	rec, err := s.store.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Status != nil {
		rec.Status = *input.Status
	}
	if input.Date != nil && *input.Date != rec.Date {
		existing, err := s.store.FindByEmployeeAndDate(ctx, rec.EmployeeID, *input.Date)
		if err != nil && err != ErrNotFound {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("attendance for this employee on %s already exists: %w", *input.Date, ErrAlreadyMarked)
		}
		rec.Date = *input.Date
	}
	if err := s.store.UpdateRecord(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.store.DeleteRecord(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *Service) Summary(ctx context.Context) ([]SummaryRow, error) {
	return s.store.Summary(ctx)
}

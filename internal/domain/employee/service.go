package employee

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

// NextCode generates the next employee code in the EMP-XXXX sequence given
// the codes already in use. Codes outside the EMP- scheme are ignored.
func NextCode(existing []string) string {
	max := 0
	for _, code := range existing {
		rest, ok := strings.CutPrefix(code, "EMP-")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("EMP-%04d", max+1)
}

// Create stores a new employee, generating a code when none is supplied.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Employee, error) {
	code := strings.ToUpper(strings.TrimSpace(input.EmployeeID))
	if code == "" {
		codes, err := s.store.ListCodes(ctx)
		if err != nil {
			return nil, err
		}
		code = NextCode(codes)
	}

	existing, err := s.store.GetEmployeeByCode(ctx, code)
	if err != nil && err != ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("employee with ID '%s' already exists: %w", code, ErrDuplicateCode)
	}

	input.EmployeeID = code
	return s.store.InsertEmployee(ctx, input)
}

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	return s.store.ListEmployees(ctx)
}

func (s *Service) GetByCode(ctx context.Context, code string) (*Employee, error) {
	return s.store.GetEmployeeByCode(ctx, code)
}

// Update applies only the supplied fields.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (*Employee, error) {
	emp, err := s.store.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.FullName != nil {
		emp.FullName = *input.FullName
	}
	if input.Email != nil {
		emp.Email = *input.Email
	}
	if input.Department != nil {
		emp.Department = *input.Department
	}
	if err := s.store.UpdateEmployee(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.store.DeleteEmployee(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

package attendance

import (
	"context"
	"errors"
	"testing"

	"hrmlite/internal/domain/employee"
)

type fakeEmpStore struct {
	employees []employee.Employee
}

func (f *fakeEmpStore) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmpStore) GetEmployee(ctx context.Context, id int64) (*employee.Employee, error) {
	for i := range f.employees {
		if f.employees[i].ID == id {
			emp := f.employees[i]
			return &emp, nil
		}
	}
	return nil, employee.ErrNotFound
}

func (f *fakeEmpStore) GetEmployeeByCode(ctx context.Context, code string) (*employee.Employee, error) {
	for i := range f.employees {
		if f.employees[i].EmployeeID == code {
			emp := f.employees[i]
			return &emp, nil
		}
	}
	return nil, employee.ErrNotFound
}

func (f *fakeEmpStore) ListCodes(ctx context.Context) ([]string, error) { return nil, nil }

func (f *fakeEmpStore) InsertEmployee(ctx context.Context, input employee.CreateInput) (*employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmpStore) UpdateEmployee(ctx context.Context, emp *employee.Employee) error { return nil }

func (f *fakeEmpStore) DeleteEmployee(ctx context.Context, id int64) (bool, error) {
	return false, nil
}

type fakeAttStore struct {
	records []Record
	nextID  int64
}

func (f *fakeAttStore) ListRecords(ctx context.Context, startDate, endDate string) ([]Record, error) {
	var out []Record
	for _, rec := range f.records {
		if startDate != "" && rec.Date < startDate {
			continue
		}
		if endDate != "" && rec.Date > endDate {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeAttStore) ListByEmployee(ctx context.Context, employeeDBID int64) ([]Record, error) {
	var out []Record
	for _, rec := range f.records {
		if rec.EmployeeID == employeeDBID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttStore) GetRecord(ctx context.Context, id int64) (*Record, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			rec := f.records[i]
			return &rec, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeAttStore) FindByEmployeeAndDate(ctx context.Context, employeeDBID int64, date string) (*Record, error) {
	for i := range f.records {
		if f.records[i].EmployeeID == employeeDBID && f.records[i].Date == date {
			rec := f.records[i]
			return &rec, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeAttStore) InsertRecord(ctx context.Context, employeeDBID int64, date, status string) (*Record, error) {
	f.nextID++
	rec := Record{ID: f.nextID, EmployeeID: employeeDBID, Date: date, Status: status}
	f.records = append(f.records, rec)
	return &rec, nil
}

func (f *fakeAttStore) UpdateRecord(ctx context.Context, rec *Record) error {
	for i := range f.records {
		if f.records[i].ID == rec.ID {
			f.records[i] = *rec
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeAttStore) DeleteRecord(ctx context.Context, id int64) (bool, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAttStore) Summary(ctx context.Context) ([]SummaryRow, error) { return nil, nil }

func newTestService(records []Record) (*Service, *fakeAttStore) {
	store := &fakeAttStore{records: records}
	for _, rec := range records {
		if rec.ID > store.nextID {
			store.nextID = rec.ID
		}
	}
	empStore := &fakeEmpStore{employees: []employee.Employee{
		{ID: 1, EmployeeID: "EMP-0001", FullName: "Jane Doe"},
		{ID: 2, EmployeeID: "EMP-0002", FullName: "John Roe"},
	}}
	return NewService(store, empStore), store
}

func TestMarkResolvesEmployeeCode(t *testing.T) {
	service, store := newTestService(nil)

	rec, err := service.Mark(context.Background(), MarkInput{
		EmployeeCode: "EMP-0002",
		Date:         "2026-08-28",
		Status:       StatusPresent,
	})
	if err != nil {
		t.Fatalf("Mark failed: %v", err)
	}
	if rec.EmployeeID != 2 {
		t.Fatalf("EmployeeID = %d, want the resolved DB id 2", rec.EmployeeID)
	}
	if len(store.records) != 1 {
		t.Fatalf("store has %d records, want 1", len(store.records))
	}
}

func TestMarkUnknownEmployee(t *testing.T) {
	service, _ := newTestService(nil)

	_, err := service.Mark(context.Background(), MarkInput{
		EmployeeCode: "EMP-9999",
		Date:         "2026-08-28",
		Status:       StatusPresent,
	})
	if !errors.Is(err, employee.ErrNotFound) {
		t.Fatalf("err = %v, want employee.ErrNotFound", err)
	}
}

func TestMarkDuplicateDate(t *testing.T) {
	service, _ := newTestService([]Record{
		{ID: 1, EmployeeID: 1, Date: "2026-08-28", Status: StatusPresent},
	})

	_, err := service.Mark(context.Background(), MarkInput{
		EmployeeCode: "EMP-0001",
		Date:         "2026-08-28",
		Status:       StatusAbsent,
	})
	if !errors.Is(err, ErrAlreadyMarked) {
		t.Fatalf("err = %v, want ErrAlreadyMarked", err)
	}
}

func TestMarkSameDateDifferentEmployee(t *testing.T) {
	service, _ := newTestService([]Record{
		{ID: 1, EmployeeID: 1, Date: "2026-08-28", Status: StatusPresent},
	})

	if _, err := service.Mark(context.Background(), MarkInput{
		EmployeeCode: "EMP-0002",
		Date:         "2026-08-28",
		Status:       StatusPresent,
	}); err != nil {
		t.Fatalf("Mark failed: %v", err)
	}
}

func TestUpdateStatusOnlySkipsDuplicateCheck(t *testing.T) {
	// Two records on distinct dates; flipping the status of one must not
	// collide with anything, even its own date.
	service, store := newTestService([]Record{
		{ID: 1, EmployeeID: 1, Date: "2026-08-27", Status: StatusPresent},
		{ID: 2, EmployeeID: 1, Date: "2026-08-28", Status: StatusPresent},
	})

	status := StatusAbsent
	rec, err := service.Update(context.Background(), 2, UpdateInput{Status: &status})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if rec.Status != StatusAbsent || rec.Date != "2026-08-28" {
		t.Fatalf("updated record = %+v", rec)
	}
	if store.records[1].Status != StatusAbsent {
		t.Fatal("status change not persisted")
	}
}

func TestUpdateDateChangeRechecksDuplicate(t *testing.T) {
	service, _ := newTestService([]Record{
		{ID: 1, EmployeeID: 1, Date: "2026-08-27", Status: StatusPresent},
		{ID: 2, EmployeeID: 1, Date: "2026-08-28", Status: StatusPresent},
	})

	date := "2026-08-27"
	_, err := service.Update(context.Background(), 2, UpdateInput{Date: &date})
	if !errors.Is(err, ErrAlreadyMarked) {
		t.Fatalf("err = %v, want ErrAlreadyMarked", err)
	}
}

func TestUpdateDateToFreeDay(t *testing.T) {
	service, _ := newTestService([]Record{
		{ID: 1, EmployeeID: 1, Date: "2026-08-27", Status: StatusPresent},
	})

	date := "2026-08-29"
	rec, err := service.Update(context.Background(), 1, UpdateInput{Date: &date})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if rec.Date != "2026-08-29" {
		t.Fatalf("Date = %q", rec.Date)
	}
}

func TestUpdateSameDateIsNoCollision(t *testing.T) {
	// Re-submitting the record's own date alongside a status change must not
	// trip the duplicate rule.
	service, _ := newTestService([]Record{
		{ID: 1, EmployeeID: 1, Date: "2026-08-27", Status: StatusPresent},
	})

	date := "2026-08-27"
	status := StatusAbsent
	rec, err := service.Update(context.Background(), 1, UpdateInput{Date: &date, Status: &status})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if rec.Status != StatusAbsent {
		t.Fatalf("Status = %q", rec.Status)
	}
}

func TestListByEmployeeCodeUnknown(t *testing.T) {
	service, _ := newTestService(nil)
	if _, err := service.ListByEmployeeCode(context.Background(), "EMP-9999"); !errors.Is(err, employee.ErrNotFound) {
		t.Fatalf("err = %v, want employee.ErrNotFound", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	service, _ := newTestService(nil)
	if err := service.Delete(context.Background(), 7); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestValidStatus(t *testing.T) {
	if !ValidStatus(StatusPresent) || !ValidStatus(StatusAbsent) {
		t.Fatal("canonical statuses must validate")
	}
	if ValidStatus("present") || ValidStatus("") || ValidStatus("LATE") {
		t.Fatal("unknown statuses must not validate")
	}
}

package attendancehandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"hrmlite/internal/domain/attendance"
	"hrmlite/internal/domain/employee"
)

type memEmpStore struct {
	employees []employee.Employee
}

func (m *memEmpStore) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	return m.employees, nil
}

func (m *memEmpStore) GetEmployee(ctx context.Context, id int64) (*employee.Employee, error) {
	for i := range m.employees {
		if m.employees[i].ID == id {
			emp := m.employees[i]
			return &emp, nil
		}
	}
	return nil, employee.ErrNotFound
}

func (m *memEmpStore) GetEmployeeByCode(ctx context.Context, code string) (*employee.Employee, error) {
	for i := range m.employees {
		if m.employees[i].EmployeeID == code {
			emp := m.employees[i]
			return &emp, nil
		}
	}
	return nil, employee.ErrNotFound
}

func (m *memEmpStore) ListCodes(ctx context.Context) ([]string, error) { return nil, nil }

func (m *memEmpStore) InsertEmployee(ctx context.Context, input employee.CreateInput) (*employee.Employee, error) {
	return nil, nil
}

func (m *memEmpStore) UpdateEmployee(ctx context.Context, emp *employee.Employee) error { return nil }

func (m *memEmpStore) DeleteEmployee(ctx context.Context, id int64) (bool, error) {
	return false, nil
}

type memAttStore struct {
	records []attendance.Record
	nextID  int64
}

func (m *memAttStore) ListRecords(ctx context.Context, startDate, endDate string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range m.records {
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

func (m *memAttStore) ListByEmployee(ctx context.Context, employeeDBID int64) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range m.records {
		if rec.EmployeeID == employeeDBID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *memAttStore) GetRecord(ctx context.Context, id int64) (*attendance.Record, error) {
	for i := range m.records {
		if m.records[i].ID == id {
			rec := m.records[i]
			return &rec, nil
		}
	}
	return nil, attendance.ErrNotFound
}

func (m *memAttStore) FindByEmployeeAndDate(ctx context.Context, employeeDBID int64, date string) (*attendance.Record, error) {
	for i := range m.records {
		if m.records[i].EmployeeID == employeeDBID && m.records[i].Date == date {
			rec := m.records[i]
			return &rec, nil
		}
	}
	return nil, attendance.ErrNotFound
}

func (m *memAttStore) InsertRecord(ctx context.Context, employeeDBID int64, date, status string) (*attendance.Record, error) {
	m.nextID++
	rec := attendance.Record{ID: m.nextID, EmployeeID: employeeDBID, Date: date, Status: status}
	m.records = append(m.records, rec)
	return &rec, nil
}

func (m *memAttStore) UpdateRecord(ctx context.Context, rec *attendance.Record) error {
	for i := range m.records {
		if m.records[i].ID == rec.ID {
			m.records[i] = *rec
			return nil
		}
	}
	return attendance.ErrNotFound
}

func (m *memAttStore) DeleteRecord(ctx context.Context, id int64) (bool, error) {
	for i := range m.records {
		if m.records[i].ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memAttStore) Summary(ctx context.Context) ([]attendance.SummaryRow, error) {
	return []attendance.SummaryRow{}, nil
}

func newTestRouter(attStore *memAttStore) chi.Router {
	empStore := &memEmpStore{employees: []employee.Employee{
		{ID: 1, EmployeeID: "EMP-0001", FullName: "Jane Doe"},
	}}
	r := chi.NewRouter()
	NewHandler(attendance.NewService(attStore, empStore)).RegisterRoutes(r)
	return r
}

func TestMarkAttendance(t *testing.T) {
	router := newTestRouter(&memAttStore{})

	body := `{"employee_id":"EMP-0001","date":"2026-08-28","status":"PRESENT"}`
	req := httptest.NewRequest(http.MethodPost, "/attendance", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body.String())
	}
	var created attendance.Record
	_ = json.Unmarshal(rec.Body.Bytes(), &created)
	if created.EmployeeID != 1 || created.Date != "2026-08-28" {
		t.Fatalf("created = %+v", created)
	}
}

func TestMarkAttendanceValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing employee", body: `{"date":"2026-08-28","status":"PRESENT"}`},
		{name: "bad date", body: `{"employee_id":"EMP-0001","date":"28/08/2026","status":"PRESENT"}`},
		{name: "bad status", body: `{"employee_id":"EMP-0001","date":"2026-08-28","status":"LATE"}`},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(&memAttStore{})
			req := httptest.NewRequest(http.MethodPost, "/attendance", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d, want 422; body %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestMarkAttendanceUnknownEmployee(t *testing.T) {
	router := newTestRouter(&memAttStore{})

	body := `{"employee_id":"EMP-9999","date":"2026-08-28","status":"PRESENT"}`
	req := httptest.NewRequest(http.MethodPost, "/attendance", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestMarkAttendanceDuplicate(t *testing.T) {
	store := &memAttStore{
		records: []attendance.Record{{ID: 1, EmployeeID: 1, Date: "2026-08-28", Status: attendance.StatusPresent}},
		nextID:  1,
	}
	router := newTestRouter(store)

	body := `{"employee_id":"EMP-0001","date":"2026-08-28","status":"ABSENT"}`
	req := httptest.NewRequest(http.MethodPost, "/attendance", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body %s", rec.Code, rec.Body.String())
	}
	var envelope struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &envelope)
	if !strings.Contains(envelope.Message, "2026-08-28") {
		t.Fatalf("message %q should name the conflicting date", envelope.Message)
	}
}

func TestListAttendanceDateFilterValidation(t *testing.T) {
	router := newTestRouter(&memAttStore{})

	req := httptest.NewRequest(http.MethodGet, "/attendance?start_date=notadate", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestListByEmployeeCode(t *testing.T) {
	store := &memAttStore{
		records: []attendance.Record{
			{ID: 1, EmployeeID: 1, Date: "2026-08-27", Status: attendance.StatusPresent},
			{ID: 2, EmployeeID: 2, Date: "2026-08-27", Status: attendance.StatusPresent},
		},
		nextID: 2,
	}
	router := newTestRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/attendance/EMP-0001", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	var records []attendance.Record
	_ = json.Unmarshal(rec.Body.Bytes(), &records)
	if len(records) != 1 || records[0].ID != 1 {
		t.Fatalf("records = %+v", records)
	}

	req = httptest.NewRequest(http.MethodGet, "/attendance/EMP-9999", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown code status = %d, want 404", rec.Code)
	}
}

func TestUpdateAttendanceStatus(t *testing.T) {
	store := &memAttStore{
		records: []attendance.Record{{ID: 1, EmployeeID: 1, Date: "2026-08-28", Status: attendance.StatusPresent}},
		nextID:  1,
	}
	router := newTestRouter(store)

	req := httptest.NewRequest(http.MethodPut, "/attendance/1", strings.NewReader(`{"status":"ABSENT"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	var updated attendance.Record
	_ = json.Unmarshal(rec.Body.Bytes(), &updated)
	if updated.Status != attendance.StatusAbsent {
		t.Fatalf("Status = %q", updated.Status)
	}
}

func TestDeleteAttendance(t *testing.T) {
	store := &memAttStore{
		records: []attendance.Record{{ID: 1, EmployeeID: 1, Date: "2026-08-28", Status: attendance.StatusPresent}},
		nextID:  1,
	}
	router := newTestRouter(store)

	req := httptest.NewRequest(http.MethodDelete, "/attendance/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/attendance/1", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}
}

func TestDeleteAttendanceBadID(t *testing.T) {
	router := newTestRouter(&memAttStore{})

	req := httptest.NewRequest(http.MethodDelete, "/attendance/notanid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

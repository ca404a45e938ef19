package client

import "time"

// Attendance status values as exposed by the API.
const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
)

type Employee struct {
	ID         int64     `json:"id"`
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type EmployeeInput struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type AttendanceRecord struct {
	ID           int64     `json:"id"`
	EmployeeID   int64     `json:"employee_id"`
	Date         string    `json:"date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	EmployeeName string    `json:"employee_name,omitempty"`
	EmployeeCode string    `json:"employee_code,omitempty"`
}

// MarkAttendanceInput references the employee by business code (EMP-XXXX),
// not the internal record id.
type MarkAttendanceInput struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

type UpdateAttendanceInput struct {
	Date   string `json:"date,omitempty"`
	Status string `json:"status,omitempty"`
}

type AttendanceSummaryRow struct {
	EmployeeID       string `json:"employee_id"`
	EmployeeName     string `json:"employee_name"`
	TotalPresentDays int    `json:"total_present_days"`
	TotalAbsentDays  int    `json:"total_absent_days"`
	TotalDays        int    `json:"total_days"`
}

type DashboardStats struct {
	TotalEmployees         int `json:"total_employees"`
	PresentToday           int `json:"present_today"`
	AbsentToday            int `json:"absent_today"`
	TotalAttendanceRecords int `json:"total_attendance_records"`
}

package attendance

import "time"

const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
)

// ValidStatus reports whether s is one of the attendance status values.
func ValidStatus(s string) bool {
	return s == StatusPresent || s == StatusAbsent
}

// Record dates travel as ISO YYYY-MM-DD strings end to end; the store owns
// the conversion to SQL DATE.
type Record struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	Date       string    `json:"date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	EmployeeName string `json:"employee_name,omitempty"`
	EmployeeCode string `json:"employee_code,omitempty"`
}

// MarkInput references the employee by business code, not the DB id.
type MarkInput struct {
	EmployeeCode string
	Date         string
	Status       string
}

type UpdateInput struct {
	Date   *string
	Status *string
}

type SummaryRow struct {
	EmployeeID       string `json:"employee_id"`
	EmployeeName     string `json:"employee_name"`
	TotalPresentDays int    `json:"total_present_days"`
	TotalAbsentDays  int    `json:"total_absent_days"`
	TotalDays        int    `json:"total_days"`
}

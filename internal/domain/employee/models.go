package employee

import "time"

type Employee struct {
	ID         int64     `json:"id"`
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreateInput struct {
	EmployeeID string
	FullName   string
	Email      string
	Department string
}

// UpdateInput fields are optional; nil leaves the stored value unchanged.
type UpdateInput struct {
	FullName   *string
	Email      *string
	Department *string
}

package employee

import "errors"

var (
	ErrNotFound      = errors.New("employee not found")
	ErrDuplicateCode = errors.New("employee id already exists")
)

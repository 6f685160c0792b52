package payroll

import "errors"

var (
	ErrInvalidAmount      = errors.New("monetary amounts must be non-negative")
	ErrPayrollNotFound    = errors.New("payroll record not found")
	ErrNotPending         = errors.New("payroll record is not pending")
	ErrNoPayrollGenerated = errors.New("no payroll records generated")
)

package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is owned by the roster; this service only ever reads it.
// Payroll and attendance rows reference employees by ID and must survive
// the employee being deleted from the roster.
type Employee struct {
	ID         string
	FirstName  string
	LastName   string
	Position   *string
	Department *string
	BaseSalary decimal.Decimal
	Status     Status
	CreatedAt  time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Placeholder names substituted when a payroll or attendance row refers to
// an employee that has since been removed from the roster.
const (
	DeletedFirstName = "Deleted"
	DeletedLastName  = "Employee"
)

package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus enum
type PayrollStatus string

const (
	PayrollStatusPending  PayrollStatus = "pending"
	PayrollStatusApproved PayrollStatus = "approved"
)

// PayrollRecord is one payroll run for one employee over a pay period.
// Once approved it is immutable; there is no reversal operation.
type PayrollRecord struct {
	ID              string
	EmployeeID      string
	PayPeriodStart  time.Time
	PayPeriodEnd    time.Time
	BaseSalary      decimal.Decimal
	Bonuses         decimal.Decimal
	OtherDeductions decimal.Decimal
	GrossPay        decimal.Decimal
	FederalTax      decimal.Decimal
	SocialSecurity  decimal.Decimal
	Medicare        decimal.Decimal
	TaxDeductions   decimal.Decimal
	NetPay          decimal.Decimal
	Status          PayrollStatus
	ApprovedBy      *string
	ApprovedAt      *time.Time
	CreatedAt       time.Time

	// Joined fields. COALESCE placeholders keep history readable after an
	// employee is deleted from the roster.
	FirstName *string
	LastName  *string
	Position  *string
}

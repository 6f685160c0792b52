package payroll

import (
	"context"
	"time"
)

// PayrollRepository defines data access for payroll records.
type PayrollRepository interface {
	// Create inserts a pending record. Overlapping periods are not checked
	// here; duplicate manual submissions are a documented limitation.
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)

	// GetByID returns the record with roster names joined (placeholder
	// names when the employee was deleted).
	GetByID(ctx context.Context, id string) (PayrollRecord, error)

	// CreateForPeriodIfAbsent inserts the record unless one already exists
	// for the employee whose pay_period_start falls in the same month/year.
	// The existence check and insert run as one statement so concurrent
	// batch runs cannot both insert. Returns inserted=false when skipped.
	CreateForPeriodIfAbsent(ctx context.Context, record PayrollRecord, month, year int) (PayrollRecord, bool, error)

	// Approve transitions pending -> approved and returns the number of
	// rows affected. The status guard is part of the UPDATE predicate so
	// the caller can tell "not found or already approved" (0) from success
	// (1) without a race.
	Approve(ctx context.Context, id string, approverID string, at time.Time) (int64, error)

	// ListByEmployee returns all records for one employee, newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]PayrollRecord, error)
}

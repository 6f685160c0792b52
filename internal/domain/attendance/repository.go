package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for the time ledger.
type AttendanceRepository interface {
	// Create inserts a new ledger entry (check-in or leave).
	Create(ctx context.Context, entry Attendance) (Attendance, error)

	// HasCheckedIn reports whether an entry with check_in set exists for
	// the employee on the given date. Used to reject double check-ins.
	HasCheckedIn(ctx context.Context, employeeID string, date time.Time) (bool, error)

	// CloseOpenEntry sets check_out and hours_worked on the employee's open
	// entry for the date. The open-entry guard is part of the UPDATE
	// predicate so two concurrent check-outs cannot both succeed; when no
	// open entry matches it returns ErrNoOpenCheckIn.
	CloseOpenEntry(ctx context.Context, employeeID string, date time.Time, checkOut time.Time) (Attendance, error)

	// GetByEmployeeAndDate returns the entry for the date, or nil when none
	// exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// ListByDate returns all entries for one calendar date, with roster
	// names joined where available.
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// ListByEmployee returns entries for one employee within [start, end].
	ListByEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)

	// GetMonthlySummary aggregates one employee's month of entries.
	GetMonthlySummary(ctx context.Context, employeeID string, year, month int) (MonthlySummary, error)
}

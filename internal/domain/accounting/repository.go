package accounting

import "context"

// AccountingRepository defines the read-only aggregate queries. Every method
// is a pure projection: repeatable, side-effect free, safe to run
// concurrently with writes.
type AccountingRepository interface {
	// GetMonthlyReport sums payroll records created within the calendar
	// month. A month with no records yields zero-valued totals, not an
	// error.
	GetMonthlyReport(ctx context.Context, year, month int) (MonthlyReportTotals, error)

	// GetAnnualTaxBreakdown groups the year's records by month of
	// pay_period_start.
	GetAnnualTaxBreakdown(ctx context.Context, year int) ([]MonthlyTaxRow, error)

	// GetAnnualTotals sums the year's records in one row.
	GetAnnualTotals(ctx context.Context, year int) (AnnualTotals, error)

	// GetYtdTotals sums one employee's records within the year.
	GetYtdTotals(ctx context.Context, employeeID string, year int) (YtdTotals, error)

	// GetMonthlyAttendanceRollup rolls up time-ledger entries per employee
	// for the month, with placeholder names for deleted employees.
	GetMonthlyAttendanceRollup(ctx context.Context, year, month int) ([]AttendanceRollupRow, error)
}

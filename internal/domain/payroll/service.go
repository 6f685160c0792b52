package payroll

import "context"

// PayrollService owns the record lifecycle: pending -> approved, with batch
// generation of one record per active employee per period.
type PayrollService interface {
	// ProcessPayroll computes a breakdown and persists a pending record.
	ProcessPayroll(ctx context.Context, req ProcessPayrollRequest) (PayrollRecordResponse, error)

	// RunBatch generates one pending record per active employee lacking one
	// for the month/year. Idempotent per employee/period; salary changes
	// between runs do not rewrite existing records.
	RunBatch(ctx context.Context, req RunBatchRequest) ([]PayrollRecordResponse, error)

	// Approve transitions a pending record to approved. A record that is
	// missing yields ErrPayrollNotFound; one already approved yields
	// ErrNotPending.
	Approve(ctx context.Context, payrollID string, approverID string) (PayrollRecordResponse, error)

	GetRecord(ctx context.Context, id string) (PayrollRecordResponse, error)

	// EmployeeHistory returns all of one employee's records with running
	// totals.
	EmployeeHistory(ctx context.Context, employeeID string) (EmployeeHistoryResponse, error)
}

package accounting

import "context"

// AccountingService answers the reporting queries over committed payroll
// records and time-ledger entries.
type AccountingService interface {
	MonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReportResponse, error)
	AnnualTaxSummary(ctx context.Context, req AnnualTaxSummaryRequest) (AnnualTaxSummaryResponse, error)
	YtdSummary(ctx context.Context, employeeID string, year int) (YtdSummaryResponse, error)
	MonthlyAttendanceReport(ctx context.Context, req MonthlyReportRequest) (MonthlyAttendanceReportResponse, error)
}

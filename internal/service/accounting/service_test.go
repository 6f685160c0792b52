package accounting

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpay/workpay-backend-go/internal/domain/accounting"
	"github.com/workpay/workpay-backend-go/internal/domain/payroll"
	"github.com/workpay/workpay-backend-go/internal/pkg/database"
	"github.com/workpay/workpay-backend-go/internal/repository/postgresql"
	payrollService "github.com/workpay/workpay-backend-go/internal/service/payroll"
)

var testAccountingDB *database.DB

func accountingTestInit(t *testing.T) {
	if testAccountingDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	var err error
	testAccountingDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func truncateAccountingTables(t *testing.T, ctx context.Context) {
	for _, table := range []string{"payroll_records", "attendance_entries", "employees"} {
		_, err := testAccountingDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createAccountingTestEmployee(t *testing.T, ctx context.Context) string {
	var employeeID string
	lastName := fmt.Sprintf("Tester-%d", time.Now().UnixNano())
	err := testAccountingDB.QueryRow(ctx, `
		INSERT INTO employees (id, first_name, last_name, position, base_salary, status, created_at)
		VALUES (gen_random_uuid(), 'Pat', $1, 'Engineer', 5000, 'active', NOW())
		RETURNING id
	`, lastName).Scan(&employeeID)
	require.NoError(t, err)
	return employeeID
}

func newTestAccountingService(t *testing.T) accounting.AccountingService {
	accountingTestInit(t)
	return NewAccountingService(testAccountingDB, postgresql.NewAccountingRepository(testAccountingDB))
}

// processTestPayroll runs a payslip through the real payroll service so the
// aggregates see records shaped exactly as production writes them.
func processTestPayroll(t *testing.T, ctx context.Context, employeeID, periodStart, periodEnd string) payroll.PayrollRecordResponse {
	svc := payrollService.NewPayrollService(
		testAccountingDB,
		postgresql.NewPayrollRepository(testAccountingDB),
		postgresql.NewEmployeeRepository(testAccountingDB),
		payroll.StandardRates(),
	)

	result, err := svc.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
		EmployeeID:     employeeID,
		PayPeriodStart: periodStart,
		PayPeriodEnd:   periodEnd,
		BaseSalary:     decimal.RequireFromString("5000"),
	})
	require.NoError(t, err)
	return result
}

func TestAccountingService_MonthlyReport_EmptyMonth(t *testing.T) {
	svc := newTestAccountingService(t)
	ctx := context.Background()
	truncateAccountingTables(t, ctx)

	report, err := svc.MonthlyReport(ctx, accounting.MonthlyReportRequest{Year: 2020, Month: 1})
	require.NoError(t, err)

	assert.Equal(t, "2020-01", report.Period)
	assert.Equal(t, 0, report.TotalEmployees)
	assert.True(t, report.TotalGrossPay.IsZero())
	assert.True(t, report.TotalNetPay.IsZero())
}

func TestAccountingService_MonthlyReport_CountsDistinctEmployees(t *testing.T) {
	svc := newTestAccountingService(t)
	ctx := context.Background()
	truncateAccountingTables(t, ctx)

	employeeID := createAccountingTestEmployee(t, ctx)
	// Two records for the same employee, processed now, so both land in the
	// current month's created_at window.
	processTestPayroll(t, ctx, employeeID, "2026-03-01", "2026-03-15")
	processTestPayroll(t, ctx, employeeID, "2026-03-16", "2026-03-31")

	now := time.Now().UTC()
	report, err := svc.MonthlyReport(ctx, accounting.MonthlyReportRequest{
		Year:  now.Year(),
		Month: int(now.Month()),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.TotalEmployees)
	assert.True(t, report.TotalGrossPay.Equal(decimal.RequireFromString("10000")), "gross = %s", report.TotalGrossPay)
	assert.True(t, report.TotalTaxDeductions.Equal(decimal.RequireFromString("2765")), "tax = %s", report.TotalTaxDeductions)
}

func TestAccountingService_AnnualTaxSummary(t *testing.T) {
	svc := newTestAccountingService(t)
	ctx := context.Background()
	truncateAccountingTables(t, ctx)

	employeeID := createAccountingTestEmployee(t, ctx)
	processTestPayroll(t, ctx, employeeID, "2026-03-01", "2026-03-31")
	processTestPayroll(t, ctx, employeeID, "2026-04-01", "2026-04-30")
	// A record in another year must not leak into 2026.
	processTestPayroll(t, ctx, employeeID, "2025-12-01", "2025-12-31")

	summary, err := svc.AnnualTaxSummary(ctx, accounting.AnnualTaxSummaryRequest{Year: 2026})
	require.NoError(t, err)

	assert.Equal(t, 2026, summary.Year)
	assert.Equal(t, 1, summary.AnnualTotals.UniqueEmployees)
	assert.True(t, summary.AnnualTotals.AnnualGross.Equal(decimal.RequireFromString("10000")))
	assert.True(t, summary.AnnualTotals.AnnualTaxes.Equal(decimal.RequireFromString("2765")))

	require.Len(t, summary.MonthlyBreakdown, 2)
	assert.Equal(t, 3, summary.MonthlyBreakdown[0].Month)
	assert.Equal(t, 4, summary.MonthlyBreakdown[1].Month)
	assert.True(t, summary.MonthlyBreakdown[0].TotalTaxes.Equal(decimal.RequireFromString("1382.5")))
}

func TestAccountingService_YtdSummary(t *testing.T) {
	svc := newTestAccountingService(t)
	ctx := context.Background()
	truncateAccountingTables(t, ctx)

	employeeID := createAccountingTestEmployee(t, ctx)
	processTestPayroll(t, ctx, employeeID, "2026-03-01", "2026-03-31")
	processTestPayroll(t, ctx, employeeID, "2026-04-01", "2026-04-30")

	summary, err := svc.YtdSummary(ctx, employeeID, 2026)
	require.NoError(t, err)

	assert.True(t, summary.HasData)
	assert.Equal(t, 2, summary.PayPeriods)
	assert.True(t, summary.YtdGross.Equal(decimal.RequireFromString("10000")))
	assert.True(t, summary.YtdNet.Equal(decimal.RequireFromString("7235")))
}

func TestAccountingService_YtdSummary_NoData(t *testing.T) {
	svc := newTestAccountingService(t)
	ctx := context.Background()
	truncateAccountingTables(t, ctx)

	summary, err := svc.YtdSummary(ctx, uuid.NewString(), 2026)
	require.NoError(t, err)

	assert.False(t, summary.HasData)
	assert.Equal(t, 0, summary.PayPeriods)
	assert.True(t, summary.YtdGross.IsZero())
}

func TestAccountingService_MonthlyAttendanceReport(t *testing.T) {
	svc := newTestAccountingService(t)
	ctx := context.Background()
	truncateAccountingTables(t, ctx)

	employeeID := createAccountingTestEmployee(t, ctx)
	_, err := testAccountingDB.Exec(ctx, `
		INSERT INTO attendance_entries (id, employee_id, date, check_in, check_out, hours_worked, status)
		VALUES
			(gen_random_uuid(), $1, '2026-03-02', '2026-03-02 09:00+00', '2026-03-02 17:30+00', 8.5, 'present'),
			(gen_random_uuid(), $1, '2026-03-03', NULL, NULL, 0, 'leave')
	`, employeeID)
	require.NoError(t, err)

	report, err := svc.MonthlyAttendanceReport(ctx, accounting.MonthlyReportRequest{Year: 2026, Month: 3})
	require.NoError(t, err)

	require.Len(t, report.Employees, 1)
	row := report.Employees[0]
	assert.Equal(t, employeeID, row.EmployeeID)
	assert.Equal(t, 1, row.PresentDays)
	assert.Equal(t, 1, row.LeaveDays)
	assert.InDelta(t, 8.5, row.TotalHours, 0.01)
	assert.Contains(t, row.EmployeeName, "Pat")
}

func TestAccountingService_MonthlyAttendanceReport_SentinelForDeletedEmployee(t *testing.T) {
	svc := newTestAccountingService(t)
	ctx := context.Background()
	truncateAccountingTables(t, ctx)

	// Entry whose employee row no longer exists.
	ghostID := uuid.NewString()
	_, err := testAccountingDB.Exec(ctx, `
		INSERT INTO attendance_entries (id, employee_id, date, check_in, check_out, hours_worked, status)
		VALUES (gen_random_uuid(), $1, '2026-03-02', '2026-03-02 09:00+00', '2026-03-02 17:00+00', 8, 'present')
	`, ghostID)
	require.NoError(t, err)

	report, err := svc.MonthlyAttendanceReport(ctx, accounting.MonthlyReportRequest{Year: 2026, Month: 3})
	require.NoError(t, err)

	require.Len(t, report.Employees, 1)
	assert.Equal(t, "Deleted Employee", report.Employees[0].EmployeeName)
}

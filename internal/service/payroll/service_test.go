package payroll

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
	"github.com/workpay/workpay-backend-go/internal/domain/payroll"
	"github.com/workpay/workpay-backend-go/internal/pkg/database"
	"github.com/workpay/workpay-backend-go/internal/repository/postgresql"
)

var testPayrollDB *database.DB

func payrollTestInit(t *testing.T) {
	if testPayrollDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	var err error
	testPayrollDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func truncatePayrollTables(t *testing.T, ctx context.Context) {
	for _, table := range []string{"payroll_records", "attendance_entries", "employees"} {
		_, err := testPayrollDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createPayrollTestEmployee(t *testing.T, ctx context.Context, salary string, status string) string {
	var employeeID string
	lastName := fmt.Sprintf("Tester-%d", time.Now().UnixNano())
	err := testPayrollDB.QueryRow(ctx, `
		INSERT INTO employees (id, first_name, last_name, position, base_salary, status, created_at)
		VALUES (gen_random_uuid(), 'Pat', $1, 'Engineer', $2, $3, NOW())
		RETURNING id
	`, lastName, salary, status).Scan(&employeeID)
	require.NoError(t, err)
	return employeeID
}

func newTestPayrollService(t *testing.T) payroll.PayrollService {
	payrollTestInit(t)
	payrollRepo := postgresql.NewPayrollRepository(testPayrollDB)
	employeeRepo := postgresql.NewEmployeeRepository(testPayrollDB)
	return NewPayrollService(testPayrollDB, payrollRepo, employeeRepo, payroll.StandardRates())
}

func processRequest(employeeID string) payroll.ProcessPayrollRequest {
	bonuses := decimal.RequireFromString("500")
	deductions := decimal.RequireFromString("100")
	return payroll.ProcessPayrollRequest{
		EmployeeID:      employeeID,
		PayPeriodStart:  "2026-03-01",
		PayPeriodEnd:    "2026-03-31",
		BaseSalary:      decimal.RequireFromString("5000"),
		Bonuses:         &bonuses,
		OtherDeductions: &deductions,
	}
}

func TestPayrollService_ProcessPayroll(t *testing.T) {
	svc := newTestPayrollService(t)
	ctx := context.Background()
	truncatePayrollTables(t, ctx)

	employeeID := createPayrollTestEmployee(t, ctx, "5000", "active")

	result, err := svc.ProcessPayroll(ctx, processRequest(employeeID))
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "pending", result.Status)
	assert.True(t, result.GrossPay.Equal(decimal.RequireFromString("5500")), "gross = %s", result.GrossPay)
	assert.True(t, result.TaxDeductions.Equal(decimal.RequireFromString("1520.75")), "tax = %s", result.TaxDeductions)
	assert.True(t, result.NetPay.Equal(decimal.RequireFromString("3879.25")), "net = %s", result.NetPay)
	assert.Nil(t, result.ApprovedBy)
}

func TestPayrollService_ProcessPayroll_UnknownEmployee(t *testing.T) {
	svc := newTestPayrollService(t)
	ctx := context.Background()
	truncatePayrollTables(t, ctx)

	_, err := svc.ProcessPayroll(ctx, processRequest(uuid.NewString()))
	assert.Error(t, err)
}

func TestPayrollService_ProcessPayroll_OverlappingPeriodsAllowed(t *testing.T) {
	svc := newTestPayrollService(t)
	ctx := context.Background()
	truncatePayrollTables(t, ctx)

	employeeID := createPayrollTestEmployee(t, ctx, "5000", "active")

	_, err := svc.ProcessPayroll(ctx, processRequest(employeeID))
	require.NoError(t, err)
	_, err = svc.ProcessPayroll(ctx, processRequest(employeeID))
	require.NoError(t, err)

	history, err := svc.EmployeeHistory(ctx, employeeID)
	require.NoError(t, err)
	assert.Equal(t, 2, history.Summary.TotalPayslips)
}

func TestPayrollService_Approve(t *testing.T) {
	svc := newTestPayrollService(t)
	ctx := context.Background()
	truncatePayrollTables(t, ctx)

	employeeID := createPayrollTestEmployee(t, ctx, "5000", "active")
	created, err := svc.ProcessPayroll(ctx, processRequest(employeeID))
	require.NoError(t, err)

	approverID := uuid.NewString()
	approved, err := svc.Approve(ctx, created.ID, approverID)
	require.NoError(t, err)

	assert.Equal(t, "approved", approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, approverID, *approved.ApprovedBy)
	assert.NotNil(t, approved.ApprovedAt)
}

func TestPayrollService_Approve_AlreadyApproved(t *testing.T) {
	svc := newTestPayrollService(t)
	ctx := context.Background()
	truncatePayrollTables(t, ctx)

	employeeID := createPayrollTestEmployee(t, ctx, "5000", "active")
	created, err := svc.ProcessPayroll(ctx, processRequest(employeeID))
	require.NoError(t, err)

	_, err = svc.Approve(ctx, created.ID, uuid.NewString())
	require.NoError(t, err)

	_, err = svc.Approve(ctx, created.ID, uuid.NewString())
	assert.ErrorIs(t, err, payroll.ErrNotPending)
}

func TestPayrollService_Approve_NotFound(t *testing.T) {
	svc := newTestPayrollService(t)
	ctx := context.Background()
	truncatePayrollTables(t, ctx)

	_, err := svc.Approve(ctx, uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
}

func TestPayrollService_RunBatch(t *testing.T) {
	svc := newTestPayrollService(t)
	ctx := context.Background()
	truncatePayrollTables(t, ctx)

	createPayrollTestEmployee(t, ctx, "5000", "active")
	createPayrollTestEmployee(t, ctx, "4000", "active")
	createPayrollTestEmployee(t, ctx, "3000", "inactive")

	req := payroll.RunBatchRequest{PeriodMonth: 3, PeriodYear: 2026}
	generated, err := svc.RunBatch(ctx, req)
	require.NoError(t, err)
	require.Len(t, generated, 2)

	for _, record := range generated {
		assert.Equal(t, "pending", record.Status)
		assert.Equal(t, "2026-03-01", record.PayPeriodStart)
		assert.Equal(t, "2026-03-31", record.PayPeriodEnd)
	}
}

func TestPayrollService_RunBatch_IdempotentPerPeriod(t *testing.T) {
	svc := newTestPayrollService(t)
	ctx := context.Background()
	truncatePayrollTables(t, ctx)

	employeeID := createPayrollTestEmployee(t, ctx, "5000", "active")

	req := payroll.RunBatchRequest{PeriodMonth: 3, PeriodYear: 2026}
	first, err := svc.RunBatch(ctx, req)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// A salary change between runs must not rewrite the existing record.
	_, err = testPayrollDB.Exec(ctx, "UPDATE employees SET base_salary = 9000 WHERE id = $1", employeeID)
	require.NoError(t, err)

	second, err := svc.RunBatch(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, second)

	history, err := svc.EmployeeHistory(ctx, employeeID)
	require.NoError(t, err)
	require.Equal(t, 1, history.Summary.TotalPayslips)
	assert.True(t, history.Records[0].BaseSalary.Equal(decimal.RequireFromString("5000")))
}

func TestPayrollService_RunBatch_DifferentPeriodsCoexist(t *testing.T) {
	svc := newTestPayrollService(t)
	ctx := context.Background()
	truncatePayrollTables(t, ctx)

	employeeID := createPayrollTestEmployee(t, ctx, "5000", "active")

	_, err := svc.RunBatch(ctx, payroll.RunBatchRequest{PeriodMonth: 3, PeriodYear: 2026})
	require.NoError(t, err)
	_, err = svc.RunBatch(ctx, payroll.RunBatchRequest{PeriodMonth: 4, PeriodYear: 2026})
	require.NoError(t, err)

	history, err := svc.EmployeeHistory(ctx, employeeID)
	require.NoError(t, err)
	assert.Equal(t, 2, history.Summary.TotalPayslips)
}

func TestPayrollService_RunBatch_NoActiveEmployees(t *testing.T) {
	svc := newTestPayrollService(t)
	ctx := context.Background()
	truncatePayrollTables(t, ctx)

	_, err := svc.RunBatch(ctx, payroll.RunBatchRequest{PeriodMonth: 3, PeriodYear: 2026})
	assert.ErrorIs(t, err, payroll.ErrNoPayrollGenerated)
}

func TestPayrollService_EmployeeHistory_Totals(t *testing.T) {
	svc := newTestPayrollService(t)
	ctx := context.Background()
	truncatePayrollTables(t, ctx)

	employeeID := createPayrollTestEmployee(t, ctx, "5000", "active")
	_, err := svc.ProcessPayroll(ctx, processRequest(employeeID))
	require.NoError(t, err)
	_, err = svc.ProcessPayroll(ctx, processRequest(employeeID))
	require.NoError(t, err)

	history, err := svc.EmployeeHistory(ctx, employeeID)
	require.NoError(t, err)

	assert.Equal(t, 2, history.Summary.TotalPayslips)
	assert.True(t, history.Summary.TotalGrossPay.Equal(decimal.RequireFromString("11000")))
	assert.True(t, history.Summary.TotalTaxDeductions.Equal(decimal.RequireFromString("3041.5")))
	assert.True(t, history.Summary.TotalNetPay.Equal(decimal.RequireFromString("7758.5")))
}

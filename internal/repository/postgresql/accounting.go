package postgresql

import (
	"context"
	"time"

	"github.com/workpay/workpay-backend-go/internal/domain/accounting"
	"github.com/workpay/workpay-backend-go/internal/pkg/database"
)

type accountingRepository struct {
	db *database.DB
}

func NewAccountingRepository(db *database.DB) accounting.AccountingRepository {
	return &accountingRepository{db: db}
}

// GetMonthlyReport implements accounting.AccountingRepository.
// Filters on created_at, not pay-period dates: periods may straddle months,
// and the report is meant to show what was processed during the month.
func (r *accountingRepository) GetMonthlyReport(ctx context.Context, year, month int) (accounting.MonthlyReportTotals, error) {
	q := GetQuerier(ctx, r.db)

	firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := firstDay.AddDate(0, 1, 0)

	query := `
		SELECT
			COUNT(DISTINCT employee_id) AS total_employees,
			COALESCE(SUM(gross_pay), 0) AS total_gross_pay,
			COALESCE(SUM(tax_deductions), 0) AS total_tax_deductions,
			COALESCE(SUM(other_deductions), 0) AS total_other_deductions,
			COALESCE(SUM(net_pay), 0) AS total_net_pay
		FROM payroll_records
		WHERE created_at >= $1 AND created_at < $2
	`

	var t accounting.MonthlyReportTotals
	err := q.QueryRow(ctx, query, firstDay, nextMonth).Scan(
		&t.TotalEmployees, &t.TotalGrossPay, &t.TotalTaxDeductions,
		&t.TotalOtherDeductions, &t.TotalNetPay,
	)
	if err != nil {
		return accounting.MonthlyReportTotals{}, database.WrapErr("failed to get monthly report", err)
	}

	return t, nil
}

// GetAnnualTaxBreakdown implements accounting.AccountingRepository.
// Grouped by pay_period_start month, not created_at like the monthly report:
// tax filings follow the period the pay covers.
func (r *accountingRepository) GetAnnualTaxBreakdown(ctx context.Context, year int) ([]accounting.MonthlyTaxRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			EXTRACT(MONTH FROM pay_period_start)::int AS month,
			COALESCE(SUM(tax_deductions), 0) AS total_taxes,
			COALESCE(SUM(gross_pay), 0) AS monthly_gross,
			COUNT(DISTINCT employee_id) AS total_employees
		FROM payroll_records
		WHERE EXTRACT(YEAR FROM pay_period_start) = $1
		GROUP BY EXTRACT(MONTH FROM pay_period_start)
		ORDER BY month
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, database.WrapErr("failed to get annual tax breakdown", err)
	}
	defer rows.Close()

	var breakdown []accounting.MonthlyTaxRow
	for rows.Next() {
		var row accounting.MonthlyTaxRow
		if err := rows.Scan(&row.Month, &row.TotalTaxes, &row.MonthlyGross, &row.TotalEmployees); err != nil {
			return nil, database.WrapErr("failed to scan tax breakdown row", err)
		}
		breakdown = append(breakdown, row)
	}

	return breakdown, nil
}

// GetAnnualTotals implements accounting.AccountingRepository.
func (r *accountingRepository) GetAnnualTotals(ctx context.Context, year int) (accounting.AnnualTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(tax_deductions), 0) AS annual_taxes,
			COALESCE(SUM(gross_pay), 0) AS annual_gross,
			COUNT(DISTINCT employee_id) AS unique_employees
		FROM payroll_records
		WHERE EXTRACT(YEAR FROM pay_period_start) = $1
	`

	var t accounting.AnnualTotals
	err := q.QueryRow(ctx, query, year).Scan(&t.AnnualTaxes, &t.AnnualGross, &t.UniqueEmployees)
	if err != nil {
		return accounting.AnnualTotals{}, database.WrapErr("failed to get annual totals", err)
	}

	return t, nil
}

// GetYtdTotals implements accounting.AccountingRepository.
func (r *accountingRepository) GetYtdTotals(ctx context.Context, employeeID string, year int) (accounting.YtdTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(gross_pay), 0) AS ytd_gross,
			COALESCE(SUM(tax_deductions), 0) AS ytd_taxes,
			COALESCE(SUM(other_deductions), 0) AS ytd_deductions,
			COALESCE(SUM(net_pay), 0) AS ytd_net,
			COUNT(*) AS pay_periods
		FROM payroll_records
		WHERE employee_id = $1 AND EXTRACT(YEAR FROM pay_period_start) = $2
	`

	var t accounting.YtdTotals
	err := q.QueryRow(ctx, query, employeeID, year).Scan(
		&t.YtdGross, &t.YtdTaxes, &t.YtdDeductions, &t.YtdNet, &t.PayPeriods,
	)
	if err != nil {
		return accounting.YtdTotals{}, database.WrapErr("failed to get ytd totals", err)
	}

	return t, nil
}

// GetMonthlyAttendanceRollup implements accounting.AccountingRepository.
func (r *accountingRepository) GetMonthlyAttendanceRollup(ctx context.Context, year, month int) ([]accounting.AttendanceRollupRow, error) {
	q := GetQuerier(ctx, r.db)

	firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	query := `
		SELECT
			a.employee_id,
			COALESCE(e.first_name, 'Deleted') || ' ' || COALESCE(e.last_name, 'Employee') AS employee_name,
			COUNT(*) FILTER (WHERE a.status = 'present') AS present_days,
			COUNT(*) FILTER (WHERE a.status = 'leave') AS leave_days,
			COALESCE(SUM(a.hours_worked), 0) AS total_hours
		FROM attendance_entries a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.date BETWEEN $1 AND $2
		GROUP BY a.employee_id, e.first_name, e.last_name
		ORDER BY employee_name
	`

	rows, err := q.Query(ctx, query, firstDay, lastDay)
	if err != nil {
		return nil, database.WrapErr("failed to get monthly attendance rollup", err)
	}
	defer rows.Close()

	var rollup []accounting.AttendanceRollupRow
	for rows.Next() {
		var row accounting.AttendanceRollupRow
		if err := rows.Scan(&row.EmployeeID, &row.EmployeeName, &row.PresentDays, &row.LeaveDays, &row.TotalHours); err != nil {
			return nil, database.WrapErr("failed to scan attendance rollup row", err)
		}
		rollup = append(rollup, row)
	}

	return rollup, nil
}

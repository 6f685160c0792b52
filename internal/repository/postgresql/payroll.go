package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workpay/workpay-backend-go/internal/domain/payroll"
	"github.com/workpay/workpay-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollRecordColumns = `
	p.id, p.employee_id, p.pay_period_start, p.pay_period_end,
	p.base_salary, p.bonuses, p.other_deductions,
	p.gross_pay, p.federal_tax, p.social_security, p.medicare, p.tax_deductions, p.net_pay,
	p.status, p.approved_by, p.approved_at, p.created_at,
	COALESCE(e.first_name, 'Deleted') AS first_name,
	COALESCE(e.last_name, 'Employee') AS last_name,
	e.position
`

func scanPayrollRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var r payroll.PayrollRecord
	err := row.Scan(
		&r.ID, &r.EmployeeID, &r.PayPeriodStart, &r.PayPeriodEnd,
		&r.BaseSalary, &r.Bonuses, &r.OtherDeductions,
		&r.GrossPay, &r.FederalTax, &r.SocialSecurity, &r.Medicare, &r.TaxDeductions, &r.NetPay,
		&r.Status, &r.ApprovedBy, &r.ApprovedAt, &r.CreatedAt,
		&r.FirstName, &r.LastName, &r.Position,
	)
	return r, err
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepository) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			id, employee_id, pay_period_start, pay_period_end,
			base_salary, bonuses, other_deductions,
			gross_pay, federal_tax, social_security, medicare, tax_deductions, net_pay,
			status
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 'pending'
		) RETURNING id, status, created_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.PayPeriodStart, record.PayPeriodEnd,
		record.BaseSalary, record.Bonuses, record.OtherDeductions,
		record.GrossPay, record.FederalTax, record.SocialSecurity, record.Medicare,
		record.TaxDeductions, record.NetPay,
	).Scan(&record.ID, &record.Status, &record.CreatedAt)

	if err != nil {
		return payroll.PayrollRecord{}, database.WrapErr("failed to create payroll record", err)
	}

	return record, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollRecordColumns + `
		FROM payroll_records p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	record, err := scanPayrollRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollNotFound
		}
		return payroll.PayrollRecord{}, database.WrapErr("failed to get payroll record", err)
	}

	return record, nil
}

// CreateForPeriodIfAbsent implements payroll.PayrollRepository.
// Existence check and insert run in one statement; concurrent batch runs
// for the same employee/period race on the store, not in application code.
func (r *payrollRepository) CreateForPeriodIfAbsent(ctx context.Context, record payroll.PayrollRecord, month, year int) (payroll.PayrollRecord, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			id, employee_id, pay_period_start, pay_period_end,
			base_salary, bonuses, other_deductions,
			gross_pay, federal_tax, social_security, medicare, tax_deductions, net_pay,
			status
		)
		SELECT gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 'pending'
		WHERE NOT EXISTS (
			SELECT 1 FROM payroll_records
			WHERE employee_id = $1
			  AND EXTRACT(MONTH FROM pay_period_start) = $13
			  AND EXTRACT(YEAR FROM pay_period_start) = $14
		)
		RETURNING id, status, created_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.PayPeriodStart, record.PayPeriodEnd,
		record.BaseSalary, record.Bonuses, record.OtherDeductions,
		record.GrossPay, record.FederalTax, record.SocialSecurity, record.Medicare,
		record.TaxDeductions, record.NetPay,
		month, year,
	).Scan(&record.ID, &record.Status, &record.CreatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, false, nil
		}
		return payroll.PayrollRecord{}, false, database.WrapErr("failed to create batch payroll record", err)
	}

	return record, true, nil
}

// Approve implements payroll.PayrollRepository.
// The status predicate makes this a compare-and-swap: a second concurrent
// approval matches zero rows.
func (r *payrollRepository) Approve(ctx context.Context, id string, approverID string, at time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = 'approved', approved_by = $2, approved_at = $3
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, id, approverID, at)
	if err != nil {
		return 0, database.WrapErr("failed to approve payroll record", err)
	}

	return tag.RowsAffected(), nil
}

// ListByEmployee implements payroll.PayrollRepository.
func (r *payrollRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollRecordColumns + `
		FROM payroll_records p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1
		ORDER BY p.created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, database.WrapErr("failed to list payroll records", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		record, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, database.WrapErr("failed to scan payroll record", err)
		}
		records = append(records, record)
	}

	return records, nil
}

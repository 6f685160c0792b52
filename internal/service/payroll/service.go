package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/workpay/workpay-backend-go/internal/domain/employee"
	"github.com/workpay/workpay-backend-go/internal/domain/payroll"
	"github.com/workpay/workpay-backend-go/internal/pkg/database"
	"github.com/workpay/workpay-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db           *database.DB
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	rates        payroll.RateSchedule
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	rates payroll.RateSchedule,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:           db,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		rates:        rates,
	}
}

func timePtrToRFC3339(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

// toRecordResponse rounds every monetary figure to 2dp for display. Stored
// records keep full precision.
func toRecordResponse(r payroll.PayrollRecord) payroll.PayrollRecordResponse {
	firstName := employee.DeletedFirstName
	if r.FirstName != nil {
		firstName = *r.FirstName
	}
	lastName := employee.DeletedLastName
	if r.LastName != nil {
		lastName = *r.LastName
	}

	return payroll.PayrollRecordResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		FirstName:       firstName,
		LastName:        lastName,
		Position:        r.Position,
		PayPeriodStart:  r.PayPeriodStart.Format("2006-01-02"),
		PayPeriodEnd:    r.PayPeriodEnd.Format("2006-01-02"),
		BaseSalary:      r.BaseSalary.Round(2),
		Bonuses:         r.Bonuses.Round(2),
		OtherDeductions: r.OtherDeductions.Round(2),
		GrossPay:        r.GrossPay.Round(2),
		FederalTax:      r.FederalTax.Round(2),
		SocialSecurity:  r.SocialSecurity.Round(2),
		Medicare:        r.Medicare.Round(2),
		TaxDeductions:   r.TaxDeductions.Round(2),
		NetPay:          r.NetPay.Round(2),
		Status:          string(r.Status),
		ApprovedBy:      r.ApprovedBy,
		ApprovedAt:      timePtrToRFC3339(r.ApprovedAt),
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
}

// ProcessPayroll implements payroll.PayrollService.
func (p *PayrollServiceImpl) ProcessPayroll(ctx context.Context, req payroll.ProcessPayrollRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	emp, err := p.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	bonuses := decimal.Zero
	if req.Bonuses != nil {
		bonuses = *req.Bonuses
	}
	otherDeductions := decimal.Zero
	if req.OtherDeductions != nil {
		otherDeductions = *req.OtherDeductions
	}

	breakdown, err := payroll.ComputeBreakdown(req.BaseSalary, bonuses, otherDeductions, p.rates)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	periodStart, _ := time.Parse("2006-01-02", req.PayPeriodStart)
	periodEnd, _ := time.Parse("2006-01-02", req.PayPeriodEnd)

	record := payroll.PayrollRecord{
		EmployeeID:      req.EmployeeID,
		PayPeriodStart:  periodStart,
		PayPeriodEnd:    periodEnd,
		BaseSalary:      req.BaseSalary,
		Bonuses:         bonuses,
		OtherDeductions: otherDeductions,
		GrossPay:        breakdown.GrossPay,
		FederalTax:      breakdown.FederalTax,
		SocialSecurity:  breakdown.SocialSecurity,
		Medicare:        breakdown.Medicare,
		TaxDeductions:   breakdown.TotalTax,
		NetPay:          breakdown.NetPay,
		FirstName:       &emp.FirstName,
		LastName:        &emp.LastName,
		Position:        emp.Position,
	}

	created, err := p.payrollRepo.Create(ctx, record)
	if err != nil {
		return payroll.PayrollRecordResponse{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return toRecordResponse(created), nil
}

// RunBatch implements payroll.PayrollService.
// Each employee's record is computed from their base salary at run time, but
// employees who already have a record for the period are skipped entirely, so
// salary changes between runs never rewrite existing records.
func (p *PayrollServiceImpl) RunBatch(ctx context.Context, req payroll.RunBatchRequest) ([]payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	roster, err := p.employeeRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get active roster: %w", err)
	}
	if len(roster) == 0 {
		return nil, payroll.ErrNoPayrollGenerated
	}

	periodStart := time.Date(req.PeriodYear, time.Month(req.PeriodMonth), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)

	generated := make([]payroll.PayrollRecordResponse, 0, len(roster))
	err = postgresql.WithTransaction(ctx, p.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, emp := range roster {
			breakdown, err := payroll.ComputeBreakdown(emp.BaseSalary, decimal.Zero, decimal.Zero, p.rates)
			if err != nil {
				return fmt.Errorf("failed to compute payroll for employee %s: %w", emp.ID, err)
			}

			record := payroll.PayrollRecord{
				EmployeeID:      emp.ID,
				PayPeriodStart:  periodStart,
				PayPeriodEnd:    periodEnd,
				BaseSalary:      emp.BaseSalary,
				Bonuses:         decimal.Zero,
				OtherDeductions: decimal.Zero,
				GrossPay:        breakdown.GrossPay,
				FederalTax:      breakdown.FederalTax,
				SocialSecurity:  breakdown.SocialSecurity,
				Medicare:        breakdown.Medicare,
				TaxDeductions:   breakdown.TotalTax,
				NetPay:          breakdown.NetPay,
				FirstName:       &emp.FirstName,
				LastName:        &emp.LastName,
				Position:        emp.Position,
			}

			created, inserted, err := p.payrollRepo.CreateForPeriodIfAbsent(txCtx, record, req.PeriodMonth, req.PeriodYear)
			if err != nil {
				return fmt.Errorf("failed to create batch record for employee %s: %w", emp.ID, err)
			}
			if !inserted {
				continue
			}

			created.FirstName = &emp.FirstName
			created.LastName = &emp.LastName
			created.Position = emp.Position
			generated = append(generated, toRecordResponse(created))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return generated, nil
}

// Approve implements payroll.PayrollService.
// The pending check rides inside the store update; zero affected rows is then
// disambiguated into not-found versus already-approved.
func (p *PayrollServiceImpl) Approve(ctx context.Context, payrollID string, approverID string) (payroll.PayrollRecordResponse, error) {
	affected, err := p.payrollRepo.Approve(ctx, payrollID, approverID, time.Now().UTC())
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	record, err := p.payrollRepo.GetByID(ctx, payrollID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	if affected == 0 {
		return payroll.PayrollRecordResponse{}, payroll.ErrNotPending
	}

	return toRecordResponse(record), nil
}

// GetRecord implements payroll.PayrollService.
func (p *PayrollServiceImpl) GetRecord(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	record, err := p.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return toRecordResponse(record), nil
}

// EmployeeHistory implements payroll.PayrollService.
func (p *PayrollServiceImpl) EmployeeHistory(ctx context.Context, employeeID string) (payroll.EmployeeHistoryResponse, error) {
	records, err := p.payrollRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return payroll.EmployeeHistoryResponse{}, err
	}

	totalGross := decimal.Zero
	totalNet := decimal.Zero
	totalTax := decimal.Zero
	responses := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, record := range records {
		totalGross = totalGross.Add(record.GrossPay)
		totalNet = totalNet.Add(record.NetPay)
		totalTax = totalTax.Add(record.TaxDeductions)
		responses = append(responses, toRecordResponse(record))
	}

	return payroll.EmployeeHistoryResponse{
		Summary: payroll.EmployeeHistorySummary{
			TotalPayslips:      len(records),
			TotalGrossPay:      totalGross.Round(2),
			TotalNetPay:        totalNet.Round(2),
			TotalTaxDeductions: totalTax.Round(2),
		},
		Records: responses,
	}, nil
}

package accounting

import (
	"context"
	"fmt"

	"github.com/workpay/workpay-backend-go/internal/domain/accounting"
	"github.com/workpay/workpay-backend-go/internal/pkg/database"
	"github.com/workpay/workpay-backend-go/internal/pkg/validator"
)

type AccountingServiceImpl struct {
	db             *database.DB
	accountingRepo accounting.AccountingRepository
}

func NewAccountingService(db *database.DB, accountingRepo accounting.AccountingRepository) accounting.AccountingService {
	return &AccountingServiceImpl{
		db:             db,
		accountingRepo: accountingRepo,
	}
}

// MonthlyReport implements accounting.AccountingService.
func (a *AccountingServiceImpl) MonthlyReport(ctx context.Context, req accounting.MonthlyReportRequest) (accounting.MonthlyReportResponse, error) {
	if err := req.Validate(); err != nil {
		return accounting.MonthlyReportResponse{}, err
	}

	totals, err := a.accountingRepo.GetMonthlyReport(ctx, req.Year, req.Month)
	if err != nil {
		return accounting.MonthlyReportResponse{}, fmt.Errorf("failed to get monthly report: %w", err)
	}

	return accounting.MonthlyReportResponse{
		Period:               fmt.Sprintf("%04d-%02d", req.Year, req.Month),
		TotalEmployees:       totals.TotalEmployees,
		TotalGrossPay:        totals.TotalGrossPay.Round(2),
		TotalTaxDeductions:   totals.TotalTaxDeductions.Round(2),
		TotalOtherDeductions: totals.TotalOtherDeductions.Round(2),
		TotalNetPay:          totals.TotalNetPay.Round(2),
	}, nil
}

// AnnualTaxSummary implements accounting.AccountingService.
func (a *AccountingServiceImpl) AnnualTaxSummary(ctx context.Context, req accounting.AnnualTaxSummaryRequest) (accounting.AnnualTaxSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return accounting.AnnualTaxSummaryResponse{}, err
	}

	breakdown, err := a.accountingRepo.GetAnnualTaxBreakdown(ctx, req.Year)
	if err != nil {
		return accounting.AnnualTaxSummaryResponse{}, fmt.Errorf("failed to get annual tax breakdown: %w", err)
	}

	totals, err := a.accountingRepo.GetAnnualTotals(ctx, req.Year)
	if err != nil {
		return accounting.AnnualTaxSummaryResponse{}, fmt.Errorf("failed to get annual totals: %w", err)
	}

	rows := make([]accounting.MonthlyTaxRow, 0, len(breakdown))
	for _, row := range breakdown {
		row.TotalTaxes = row.TotalTaxes.Round(2)
		row.MonthlyGross = row.MonthlyGross.Round(2)
		rows = append(rows, row)
	}

	return accounting.AnnualTaxSummaryResponse{
		Year: req.Year,
		AnnualTotals: accounting.AnnualTotals{
			AnnualTaxes:     totals.AnnualTaxes.Round(2),
			AnnualGross:     totals.AnnualGross.Round(2),
			UniqueEmployees: totals.UniqueEmployees,
		},
		MonthlyBreakdown: rows,
	}, nil
}

// YtdSummary implements accounting.AccountingService.
// An employee with no records in the year gets HasData=false, not an error.
func (a *AccountingServiceImpl) YtdSummary(ctx context.Context, employeeID string, year int) (accounting.YtdSummaryResponse, error) {
	var errs validator.ValidationErrors
	if validator.IsEmpty(employeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidYear(year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}
	if len(errs) > 0 {
		return accounting.YtdSummaryResponse{}, errs
	}

	totals, err := a.accountingRepo.GetYtdTotals(ctx, employeeID, year)
	if err != nil {
		return accounting.YtdSummaryResponse{}, fmt.Errorf("failed to get ytd totals: %w", err)
	}

	if totals.PayPeriods == 0 {
		return accounting.YtdSummaryResponse{
			EmployeeID: employeeID,
			Year:       year,
			HasData:    false,
		}, nil
	}

	return accounting.YtdSummaryResponse{
		EmployeeID:    employeeID,
		Year:          year,
		HasData:       true,
		YtdGross:      totals.YtdGross.Round(2),
		YtdTaxes:      totals.YtdTaxes.Round(2),
		YtdDeductions: totals.YtdDeductions.Round(2),
		YtdNet:        totals.YtdNet.Round(2),
		PayPeriods:    totals.PayPeriods,
	}, nil
}

// MonthlyAttendanceReport implements accounting.AccountingService.
func (a *AccountingServiceImpl) MonthlyAttendanceReport(ctx context.Context, req accounting.MonthlyReportRequest) (accounting.MonthlyAttendanceReportResponse, error) {
	if err := req.Validate(); err != nil {
		return accounting.MonthlyAttendanceReportResponse{}, err
	}

	rollup, err := a.accountingRepo.GetMonthlyAttendanceRollup(ctx, req.Year, req.Month)
	if err != nil {
		return accounting.MonthlyAttendanceReportResponse{}, fmt.Errorf("failed to get monthly attendance rollup: %w", err)
	}

	if rollup == nil {
		rollup = []accounting.AttendanceRollupRow{}
	}

	return accounting.MonthlyAttendanceReportResponse{
		Year:      req.Year,
		Month:     req.Month,
		Employees: rollup,
	}, nil
}

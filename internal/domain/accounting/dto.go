package accounting

import (
	"github.com/shopspring/decimal"
	"github.com/workpay/workpay-backend-go/internal/pkg/validator"
)

// ========================================
// MONTHLY ORGANIZATION REPORT
// ========================================

type MonthlyReportRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MonthlyReportResponse sums records by creation timestamp, not pay-period
// boundary: periods can overlap or straddle months, and filtering by
// processing date keeps recently run payrolls visible.
type MonthlyReportResponse struct {
	Period               string          `json:"period"`
	TotalEmployees       int             `json:"total_employees"`
	TotalGrossPay        decimal.Decimal `json:"total_gross_pay"`
	TotalTaxDeductions   decimal.Decimal `json:"total_tax_deductions"`
	TotalOtherDeductions decimal.Decimal `json:"total_other_deductions"`
	TotalNetPay          decimal.Decimal `json:"total_net_pay"`
}

// MonthlyReportTotals is the raw aggregate scanned from the store.
type MonthlyReportTotals struct {
	TotalEmployees       int
	TotalGrossPay        decimal.Decimal
	TotalTaxDeductions   decimal.Decimal
	TotalOtherDeductions decimal.Decimal
	TotalNetPay          decimal.Decimal
}

// ========================================
// ANNUAL TAX SUMMARY
// ========================================

type AnnualTaxSummaryRequest struct {
	Year int `json:"year"`
}

func (r *AnnualTaxSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MonthlyTaxRow groups by the month of pay_period_start. The monthly report
// goes by created_at instead; the two filter bases differ on purpose.
type MonthlyTaxRow struct {
	Month          int             `json:"month"`
	TotalTaxes     decimal.Decimal `json:"total_taxes"`
	MonthlyGross   decimal.Decimal `json:"monthly_gross"`
	TotalEmployees int             `json:"total_employees"`
}

type AnnualTotals struct {
	AnnualTaxes     decimal.Decimal `json:"annual_taxes"`
	AnnualGross     decimal.Decimal `json:"annual_gross"`
	UniqueEmployees int             `json:"unique_employees"`
}

type AnnualTaxSummaryResponse struct {
	Year             int             `json:"year"`
	AnnualTotals     AnnualTotals    `json:"annual_totals"`
	MonthlyBreakdown []MonthlyTaxRow `json:"monthly_breakdown"`
}

// ========================================
// YEAR-TO-DATE SUMMARY
// ========================================

// YtdSummaryResponse with HasData=false is the answer for an employee with
// no records in the year; it is not an error and not a zeros-filled success.
type YtdSummaryResponse struct {
	EmployeeID    string          `json:"employee_id"`
	Year          int             `json:"year"`
	HasData       bool            `json:"has_data"`
	YtdGross      decimal.Decimal `json:"ytd_gross"`
	YtdTaxes      decimal.Decimal `json:"ytd_taxes"`
	YtdDeductions decimal.Decimal `json:"ytd_deductions"`
	YtdNet        decimal.Decimal `json:"ytd_net"`
	PayPeriods    int             `json:"pay_periods"`
}

// YtdTotals is the raw aggregate scanned from the store.
type YtdTotals struct {
	YtdGross      decimal.Decimal
	YtdTaxes      decimal.Decimal
	YtdDeductions decimal.Decimal
	YtdNet        decimal.Decimal
	PayPeriods    int
}

// ========================================
// MONTHLY ATTENDANCE REPORT
// ========================================

type AttendanceRollupRow struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	PresentDays  int     `json:"present_days"`
	LeaveDays    int     `json:"leave_days"`
	TotalHours   float64 `json:"total_hours"`
}

type MonthlyAttendanceReportResponse struct {
	Year      int                   `json:"year"`
	Month     int                   `json:"month"`
	Employees []AttendanceRollupRow `json:"employees"`
}

package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/workpay/workpay-backend-go/internal/pkg/validator"
)

type ProcessPayrollRequest struct {
	EmployeeID      string           `json:"employee_id"`
	PayPeriodStart  string           `json:"pay_period_start"`
	PayPeriodEnd    string           `json:"pay_period_end"`
	BaseSalary      decimal.Decimal  `json:"base_salary"`
	Bonuses         *decimal.Decimal `json:"bonuses,omitempty"`
	OtherDeductions *decimal.Decimal `json:"other_deductions,omitempty"`
}

func (r *ProcessPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	start, startOK := validator.IsValidDate(r.PayPeriodStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "pay_period_start", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.PayPeriodEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "must not be before pay_period_start"})
	}
	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.Bonuses != nil && r.Bonuses.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bonuses", Message: "must be non-negative"})
	}
	if r.OtherDeductions != nil && r.OtherDeductions.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "other_deductions", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RunBatchRequest struct {
	PeriodMonth int `json:"period_month"`
	PeriodYear  int `json:"period_year"`
}

func (r *RunBatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.PeriodMonth) {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.PeriodYear) {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PayrollRecordResponse carries 2dp-rounded figures; storage keeps full
// precision.
type PayrollRecordResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Position        *string         `json:"position,omitempty"`
	PayPeriodStart  string          `json:"pay_period_start"`
	PayPeriodEnd    string          `json:"pay_period_end"`
	BaseSalary      decimal.Decimal `json:"base_salary"`
	Bonuses         decimal.Decimal `json:"bonuses"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
	GrossPay        decimal.Decimal `json:"gross_pay"`
	FederalTax      decimal.Decimal `json:"federal_tax"`
	SocialSecurity  decimal.Decimal `json:"social_security"`
	Medicare        decimal.Decimal `json:"medicare"`
	TaxDeductions   decimal.Decimal `json:"tax_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
	Status          string          `json:"status"`
	ApprovedBy      *string         `json:"approved_by,omitempty"`
	ApprovedAt      *string         `json:"approved_at,omitempty"`
	CreatedAt       string          `json:"created_at"`
}

type EmployeeHistorySummary struct {
	TotalPayslips      int             `json:"total_payslips"`
	TotalGrossPay      decimal.Decimal `json:"total_gross_pay"`
	TotalNetPay        decimal.Decimal `json:"total_net_pay"`
	TotalTaxDeductions decimal.Decimal `json:"total_tax_deductions"`
}

type EmployeeHistoryResponse struct {
	Summary EmployeeHistorySummary  `json:"summary"`
	Records []PayrollRecordResponse `json:"records"`
}

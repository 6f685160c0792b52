package payroll

import "github.com/shopspring/decimal"

// RateSchedule is the statutory deduction configuration the calculator runs
// with. Rates are injected per call; nothing in the calculator reads global
// state.
type RateSchedule struct {
	Name               string
	FederalRate        decimal.Decimal
	SocialSecurityRate decimal.Decimal
	MedicareRate       decimal.Decimal
}

// StandardRates is the default schedule: federal 20%, social security 6.2%,
// medicare 1.45%.
func StandardRates() RateSchedule {
	return RateSchedule{
		Name:               "standard",
		FederalRate:        decimal.NewFromFloat(0.20),
		SocialSecurityRate: decimal.NewFromFloat(0.062),
		MedicareRate:       decimal.NewFromFloat(0.0145),
	}
}

// SimplifiedRates collapses the schedule to a flat 20% tax plus 5% insurance,
// carried in the social-security slot.
func SimplifiedRates() RateSchedule {
	return RateSchedule{
		Name:               "simplified",
		FederalRate:        decimal.NewFromFloat(0.20),
		SocialSecurityRate: decimal.NewFromFloat(0.05),
		MedicareRate:       decimal.Zero,
	}
}

// RatesForPreset resolves a configured preset name. Unknown names fall back
// to the standard schedule.
func RatesForPreset(name string) RateSchedule {
	if name == "simplified" {
		return SimplifiedRates()
	}
	return StandardRates()
}

// Breakdown is the gross/tax/net result of one payslip computation. All
// figures keep full precision; display rounding happens in DTO mapping only.
type Breakdown struct {
	GrossPay       decimal.Decimal
	FederalTax     decimal.Decimal
	SocialSecurity decimal.Decimal
	Medicare       decimal.Decimal
	TotalTax       decimal.Decimal
	NetPay         decimal.Decimal
}

// ComputeBreakdown maps (base salary, bonuses, other deductions) to a full
// payslip breakdown. Invariants: gross = base + bonuses,
// totalTax = gross * (federal + socialSecurity + medicare),
// net = gross - totalTax - otherDeductions.
// Negative monetary input is rejected with ErrInvalidAmount.
func ComputeBreakdown(baseSalary, bonuses, otherDeductions decimal.Decimal, rates RateSchedule) (Breakdown, error) {
	if baseSalary.IsNegative() || bonuses.IsNegative() || otherDeductions.IsNegative() {
		return Breakdown{}, ErrInvalidAmount
	}

	grossPay := baseSalary.Add(bonuses)
	federalTax := grossPay.Mul(rates.FederalRate)
	socialSecurity := grossPay.Mul(rates.SocialSecurityRate)
	medicare := grossPay.Mul(rates.MedicareRate)
	totalTax := federalTax.Add(socialSecurity).Add(medicare)
	netPay := grossPay.Sub(totalTax).Sub(otherDeductions)

	return Breakdown{
		GrossPay:       grossPay,
		FederalTax:     federalTax,
		SocialSecurity: socialSecurity,
		Medicare:       medicare,
		TotalTax:       totalTax,
		NetPay:         netPay,
	}, nil
}

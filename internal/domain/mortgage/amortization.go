package mortgage

import "math"

func monthlyRate(annualRatePercent float64) float64 { return annualRatePercent / 100 / 12 }

func periods(years int) int { return years * 12 }

// MonthlyPayment is the fixed installment that repays principal over the
// term at the given annual rate. A zero rate repays in equal parts.
func MonthlyPayment(principal, annualRatePercent float64, years int) float64 {
	n := periods(years)
	if n <= 0 || principal <= 0 {
		return 0
	}
	r := monthlyRate(annualRatePercent)
	if r == 0 {
		return principal / float64(n)
	}
	f := math.Pow(1+r, float64(n))
	return principal * r * f / (f - 1)
}

// MaxPrincipalForPayment inverts MonthlyPayment: the largest principal a
// fixed installment can carry over the term, clamped to MaxLoanCeiling.
func MaxPrincipalForPayment(payment, annualRatePercent float64, years int) float64 {
	n := periods(years)
	if n <= 0 {
		return 0
	}
	r := monthlyRate(annualRatePercent)
	var p float64
	if r == 0 {
		p = payment * float64(n)
	} else {
		p = payment / r * (1 - math.Pow(1+r, -float64(n)))
	}
	return math.Min(p, MaxLoanCeiling)
}

type Amortization struct {
	Principal      float64
	MonthlyPayment float64
	TotalPayment   float64
	TotalInterest  float64
	Periods        int
}

func Amortize(principal, annualRatePercent float64, years int) Amortization {
	n := periods(years)
	pay := MonthlyPayment(principal, annualRatePercent, years)
	total := pay * float64(n)
	return Amortization{
		Principal:      principal,
		MonthlyPayment: pay,
		TotalPayment:   total,
		TotalInterest:  total - principal,
		Periods:        n,
	}
}

// LoanCaps holds the three independent limits on the loan amount and the
// binding minimum.
type LoanCaps struct {
	ByProperty    float64 `json:"by_property"`
	ByLTV         float64 `json:"by_ltv"`
	ByPayment     float64 `json:"by_payment"`
	CappedPayment float64 `json:"capped_payment"`
	MaxLoan       float64 `json:"max_loan"`
}

func MaxLTVPercent(t PropertyType) float64 {
	if t == PropertyLand {
		return LandMaxLTVPct
	}
	return ResidentialMaxLTVPct
}

func SolveMaxLoan(a Application, annualRatePercent float64) LoanCaps {
	ptype, _ := ParsePropertyType(string(a.Property.Type))
	payment := CappedMonthlyPayment(a.Applicant)

	caps := LoanCaps{
		ByProperty:    a.Property.Value - a.Property.DownPayment,
		ByLTV:         a.Property.Value * MaxLTVPercent(ptype) / 100,
		ByPayment:     MaxPrincipalForPayment(payment, annualRatePercent, a.Financing.LoanYears),
		CappedPayment: payment,
	}
	caps.MaxLoan = math.Min(caps.ByProperty, math.Min(caps.ByLTV, caps.ByPayment))
	return caps
}

// MonthlyInterestSupport is the part of the installment covered by the
// subsidy. Only the first SubsidyCap of the loan is subsidised, and only
// the average monthly interest component of it.
func MonthlyInterestSupport(maxLoan, monthlyPayment float64, years, supportPercent int) float64 {
	n := periods(years)
	if n <= 0 || maxLoan <= 0 {
		return 0
	}
	supported := math.Min(maxLoan, SubsidyCap)
	interestPortion := monthlyPayment - maxLoan/float64(n)
	share := interestPortion * (supported / math.Max(1, maxLoan))
	return share * float64(supportPercent) / 100
}

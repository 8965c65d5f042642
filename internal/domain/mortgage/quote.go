package mortgage

import "github.com/shopspring/decimal"

// Quote carries every intermediate of one calculation pass at full
// precision. Rounding happens only in Result.
type Quote struct {
	Caps                     LoanCaps
	MaxLoan                  float64
	MonthlyPayment           float64
	MonthlyInterestSupport   float64
	ActualPayment            float64
	TotalPayment             float64
	TotalInterest            float64
	LoanToValue              float64
	SupportPercentage        int
	MaxInstallmentPercentage int
	SakaniSupport            float64
	ApprovalChance           ApprovalChance
	Bank                     Bank
	Comparison               []ComparisonBankData
}

// BuildQuote runs the solver, subsidy apportionment and approval heuristic
// for an application already known to be eligible, then prices the same
// loan at every catalog bank.
func BuildQuote(a Application, selected Bank, catalog []Bank) Quote {
	years := a.Financing.LoanYears
	caps := SolveMaxLoan(a, selected.AnnualRatePercent)
	am := Amortize(caps.MaxLoan, selected.AnnualRatePercent, years)
	support := SupportPercentage(a.Applicant.MonthlySalary, a.Applicant.FamilySize)
	interestSupport := MonthlyInterestSupport(caps.MaxLoan, am.MonthlyPayment, years, support)
	ltv := a.Property.LoanToValue()

	return Quote{
		Caps:                     caps,
		MaxLoan:                  caps.MaxLoan,
		MonthlyPayment:           am.MonthlyPayment,
		MonthlyInterestSupport:   interestSupport,
		ActualPayment:            am.MonthlyPayment - interestSupport,
		TotalPayment:             am.TotalPayment,
		TotalInterest:            am.TotalInterest,
		LoanToValue:              ltv,
		SupportPercentage:        support,
		MaxInstallmentPercentage: MaxInstallmentPercentage(a.Applicant.MonthlySalary),
		SakaniSupport:            SakaniSupport(a.Applicant.MonthlySalary, a.Applicant.FamilySize),
		ApprovalChance:           EvaluateApprovalChance(ltv, a.Applicant.MonthlySalary, a.Applicant.MonthlyObligations),
		Bank:                     selected,
		Comparison:               CompareBanks(catalog, caps.MaxLoan, years),
	}
}

type MortgageResult struct {
	MaxLoan           float64              `json:"max_loan"`
	MonthlyPayment    float64              `json:"monthly_payment"`
	SupportAmount     float64              `json:"support_amount"`
	ActualPayment     float64              `json:"actual_payment"`
	SupportPercentage int                  `json:"support_percentage"`
	LoanToValue       float64              `json:"loan_to_value"`
	BankName          string               `json:"bank_name"`
	InterestRate      float64              `json:"interest_rate"`
	TotalInterest     float64              `json:"total_interest"`
	TotalPayment      float64              `json:"total_payment"`
	ApprovalChance    ApprovalChance       `json:"approval_chance"`
	SakaniSupport     float64              `json:"sakani_support"`
	BankComparison    []ComparisonBankData `json:"bank_comparison"`
}

// RoundCurrency rounds to whole riyals, half away from zero.
func RoundCurrency(v float64) float64 { return roundTo(v, 0) }

func roundTo(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// RoundComparison returns a copy of rows with money rounded to whole riyals.
func RoundComparison(rows []ComparisonBankData) []ComparisonBankData {
	out := make([]ComparisonBankData, len(rows))
	for i, r := range rows {
		r.MonthlyPayment = RoundCurrency(r.MonthlyPayment)
		r.TotalPayment = RoundCurrency(r.TotalPayment)
		r.TotalInterest = RoundCurrency(r.TotalInterest)
		out[i] = r
	}
	return out
}

// Result is the presentation view of the quote.
func (q Quote) Result() MortgageResult {
	return MortgageResult{
		MaxLoan:           RoundCurrency(q.MaxLoan),
		MonthlyPayment:    RoundCurrency(q.MonthlyPayment),
		SupportAmount:     RoundCurrency(q.MonthlyInterestSupport),
		ActualPayment:     RoundCurrency(q.ActualPayment),
		SupportPercentage: q.SupportPercentage,
		LoanToValue:       roundTo(q.LoanToValue, 1),
		BankName:          q.Bank.Name,
		InterestRate:      q.Bank.AnnualRatePercent,
		TotalInterest:     RoundCurrency(q.TotalInterest),
		TotalPayment:      RoundCurrency(q.TotalPayment),
		ApprovalChance:    q.ApprovalChance,
		SakaniSupport:     RoundCurrency(q.SakaniSupport),
		BankComparison:    RoundComparison(q.Comparison),
	}
}

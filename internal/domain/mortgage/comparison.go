package mortgage

type ComparisonBankData struct {
	BankID         string  `json:"bank_id"`
	BankName       string  `json:"bank_name"`
	Rate           float64 `json:"rate"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
}

type PaymentPeriod struct {
	Period    int     `json:"period"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

type AmortizationSchedule struct {
	BankID   string          `json:"bank_id"`
	BankName string          `json:"bank_name"`
	Periods  []PaymentPeriod `json:"periods"`
}

// BalancePoint is the remaining balance per bank after Year full years.
type BalancePoint struct {
	Year     int                `json:"year"`
	Balances map[string]float64 `json:"balances"`
}

// CompareBanks prices the same principal and term at every bank, keeping
// catalog order. Values are full precision.
func CompareBanks(banks []Bank, principal float64, years int) []ComparisonBankData {
	out := make([]ComparisonBankData, 0, len(banks))
	for _, b := range banks {
		am := Amortize(principal, b.AnnualRatePercent, years)
		out = append(out, ComparisonBankData{
			BankID:         b.ID,
			BankName:       b.Name,
			Rate:           b.AnnualRatePercent,
			MonthlyPayment: am.MonthlyPayment,
			TotalPayment:   am.TotalPayment,
			TotalInterest:  am.TotalInterest,
		})
	}
	return out
}

// BuildSchedule splits each installment into interest and principal and
// tracks the remaining balance period by period.
func BuildSchedule(b Bank, principal float64, years int) AmortizationSchedule {
	n := periods(years)
	s := AmortizationSchedule{BankID: b.ID, BankName: b.Name, Periods: make([]PaymentPeriod, 0, max(n, 0))}
	if n <= 0 || principal <= 0 {
		return s
	}

	r := monthlyRate(b.AnnualRatePercent)
	payment := MonthlyPayment(principal, b.AnnualRatePercent, years)
	balance := principal
	for i := 1; i <= n; i++ {
		interest := balance * r
		princ := payment - interest
		balance -= princ
		if balance < 0 {
			balance = 0
		}
		s.Periods = append(s.Periods, PaymentPeriod{Period: i, Principal: princ, Interest: interest, Balance: balance})
	}
	return s
}

// SampleBalances picks chart points from the schedules: year 0 is the
// original principal, then one point every max(1, years/min(MaxChartPoints, years))
// years. The final year is only included when the term is a multiple of the
// step, so 25 years gives 0, 2, ..., 24. Terms of 11 to 19 years sample every
// year, giving up to 2*MaxChartPoints points.
func SampleBalances(schedules []AmortizationSchedule, principal float64, years int) []BalancePoint {
	if years <= 0 || len(schedules) == 0 {
		return nil
	}
	intervals := min(MaxChartPoints, years)
	step := max(1, years/intervals)

	var out []BalancePoint
	for y := 0; y <= years; y += step {
		pt := BalancePoint{Year: y, Balances: make(map[string]float64, len(schedules))}
		for _, s := range schedules {
			switch {
			case y == 0:
				pt.Balances[s.BankID] = principal
			case y*12 <= len(s.Periods):
				pt.Balances[s.BankID] = s.Periods[y*12-1].Balance
			default:
				pt.Balances[s.BankID] = 0
			}
		}
		out = append(out, pt)
	}
	return out
}

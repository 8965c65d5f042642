package mortgage

// EvaluateApprovalChance classifies a request by loan-to-value (percent) and
// debt-to-income. Thresholds are strict.
func EvaluateApprovalChance(loanToValue, salary, obligations float64) ApprovalChance {
	dti := obligations / salary
	switch {
	case loanToValue > 90 || dti > 0.5:
		return ChanceLow
	case loanToValue > 75 || dti > 0.4:
		return ChanceMedium
	default:
		return ChanceHigh
	}
}

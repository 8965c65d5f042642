package mortgage

import "math"

// SupportPercentage returns the share of subsidised interest in percent,
// in the range [35, 100].
func SupportPercentage(salary float64, familySize int) int {
	if salary <= SupportFullSalaryCeiling {
		return 100
	}

	excessThousands := int(math.Floor((salary - SupportFullSalaryCeiling) / SupportStepSalary))
	pct := max(SupportFloorPercent, 100-excessThousands*SupportStepPercent)

	if familySize > SupportFamilyThreshold {
		pct = min(100, pct+(familySize-SupportFamilyThreshold)*SupportStepPercent)
	}
	return pct
}

// MaxInstallmentPercentage is the permitted debt-service ratio by income
// bracket. Upper bounds are inclusive.
func MaxInstallmentPercentage(salary float64) int {
	switch {
	case salary < 5000:
		return 45
	case salary <= 10000:
		return 50
	case salary <= 15000:
		return 55
	case salary <= 25000:
		return 65
	default:
		return 70
	}
}

// SakaniSupport is the up-front housing grant. Large families get the
// higher base; salaries above the taper start lose up to half of it.
func SakaniSupport(salary float64, familySize int) float64 {
	grant := SakaniBaseGrant
	if familySize >= SakaniLargeFamilySize {
		grant = SakaniLargeFamilyGrant
	}

	if salary > SakaniTaperStart {
		factor := math.Min(1, (salary-SakaniTaperStart)/SakaniTaperSpan)
		grant = math.Max(SakaniMinGrant, grant-grant*factor*SakaniMaxReduction)
	}
	return grant
}

// CappedMonthlyPayment is the largest installment the applicant may take on:
// the bracket share of salary minus existing obligations. It can be
// negative when obligations exceed the bracket share.
func CappedMonthlyPayment(a ApplicantProfile) float64 {
	pct := float64(MaxInstallmentPercentage(a.MonthlySalary))
	return a.MonthlySalary*(pct/100) - a.MonthlyObligations
}

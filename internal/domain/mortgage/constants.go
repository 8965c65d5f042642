package mortgage

// Eligibility thresholds.
const (
	MinSalary                 = 4000.0
	MaxDebtToIncome           = 0.65
	MinRetiredSalary          = 3000.0
	ResidentialDownPaymentPct = 0.10
	LandDownPaymentPct        = 0.30
)

// Support and capacity tiers.
const (
	SupportFullSalaryCeiling = 14000.0
	SupportStepSalary        = 1000.0
	SupportStepPercent       = 5
	SupportFloorPercent      = 35
	SupportFamilyThreshold   = 3

	SakaniBaseGrant        = 100_000.0
	SakaniLargeFamilyGrant = 150_000.0
	SakaniLargeFamilySize  = 5
	SakaniMinGrant         = 50_000.0
	SakaniTaperStart       = 20_000.0
	SakaniTaperSpan        = 20_000.0
	SakaniMaxReduction     = 0.5
)

// Loan ceilings.
const (
	MaxLoanCeiling       = 1_500_000.0
	SubsidyCap           = 500_000.0
	LandMaxLTVPct        = 70.0
	ResidentialMaxLTVPct = 90.0
)

// Input bounds taken from the calculator form ranges.
const (
	MinLoanYears       = 1
	MaxLoanYears       = 30
	WizardMinLoanYears = 5
	MaxFamilySize      = 20
)

// Comparison limits.
const (
	MaxCompareBanks = 5
	MaxChartPoints  = 10
)

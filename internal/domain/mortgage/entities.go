package mortgage

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnknownBank  = errors.New("unknown bank")
)

type EmploymentSector string

const (
	SectorGovernment EmploymentSector = "government"
	SectorMilitary   EmploymentSector = "military"
	SectorPrivate    EmploymentSector = "private"
	SectorRetired    EmploymentSector = "retired"
)

func (s EmploymentSector) Valid() bool {
	switch s {
	case SectorGovernment, SectorMilitary, SectorPrivate, SectorRetired:
		return true
	}
	return false
}

type PropertyType string

const (
	PropertyApartment PropertyType = "apartment"
	PropertyVilla     PropertyType = "villa"
	PropertyTownhouse PropertyType = "townhouse"
	PropertyLand      PropertyType = "land"
)

// ParsePropertyType accepts the canonical names plus "house", which older
// clients send for a villa.
func ParsePropertyType(raw string) (PropertyType, bool) {
	switch p := PropertyType(strings.ToLower(strings.TrimSpace(raw))); p {
	case PropertyApartment, PropertyVilla, PropertyTownhouse, PropertyLand:
		return p, true
	case "house":
		return PropertyVilla, true
	}
	return "", false
}

func (p PropertyType) Residential() bool {
	return p == PropertyApartment || p == PropertyVilla || p == PropertyTownhouse
}

type PropertyState string

const (
	StateReady     PropertyState = "ready"
	StateOffPlan   PropertyState = "offplan"
	StateSelfBuild PropertyState = "selfbuild"
)

func (s PropertyState) Valid() bool {
	switch s {
	case StateReady, StateOffPlan, StateSelfBuild:
		return true
	}
	return false
}

type ApprovalChance string

const (
	ChanceLow    ApprovalChance = "low"
	ChanceMedium ApprovalChance = "medium"
	ChanceHigh   ApprovalChance = "high"
)

type ApplicantProfile struct {
	MonthlySalary      float64          `json:"monthly_salary"`
	MonthlyObligations float64          `json:"monthly_obligations"`
	FamilySize         int              `json:"family_size"`
	EmploymentSector   EmploymentSector `json:"employment_sector"`
}

type PropertyProfile struct {
	Type        PropertyType  `json:"property_type"`
	State       PropertyState `json:"property_state"`
	Value       float64       `json:"property_value"`
	DownPayment float64       `json:"down_payment"`
}

type FinancingTerms struct {
	BankID    string `json:"bank_id"`
	LoanYears int    `json:"loan_years"`
}

// Application is everything one calculation pass needs from the form.
type Application struct {
	Applicant ApplicantProfile `json:"applicant"`
	Property  PropertyProfile  `json:"property"`
	Financing FinancingTerms   `json:"financing"`
}

// Bank is the calculation view of one catalog row.
type Bank struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	AnnualRatePercent float64 `json:"rate"`
}

// Validate rejects values the amortization math cannot handle. It does not
// apply eligibility rules.
func (a Application) Validate() error {
	money := []struct {
		field string
		v     float64
	}{
		{"monthly_salary", a.Applicant.MonthlySalary},
		{"monthly_obligations", a.Applicant.MonthlyObligations},
		{"property_value", a.Property.Value},
		{"down_payment", a.Property.DownPayment},
	}
	for _, m := range money {
		if math.IsNaN(m.v) || math.IsInf(m.v, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, m.field)
		}
		if m.v < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, m.field)
		}
	}
	if a.Applicant.MonthlySalary == 0 {
		return fmt.Errorf("%w: monthly_salary must be positive", ErrInvalidInput)
	}
	if a.Property.Value == 0 {
		return fmt.Errorf("%w: property_value must be positive", ErrInvalidInput)
	}
	if a.Property.DownPayment > a.Property.Value {
		return fmt.Errorf("%w: down_payment must not exceed property_value", ErrInvalidInput)
	}
	if a.Applicant.FamilySize < 1 || a.Applicant.FamilySize > MaxFamilySize {
		return fmt.Errorf("%w: family_size must be between 1 and %d", ErrInvalidInput, MaxFamilySize)
	}
	if !a.Applicant.EmploymentSector.Valid() {
		return fmt.Errorf("%w: unknown employment_sector %q", ErrInvalidInput, a.Applicant.EmploymentSector)
	}
	if _, ok := ParsePropertyType(string(a.Property.Type)); !ok {
		return fmt.Errorf("%w: unknown property_type %q", ErrInvalidInput, a.Property.Type)
	}
	if a.Property.State != "" && !a.Property.State.Valid() {
		return fmt.Errorf("%w: unknown property_state %q", ErrInvalidInput, a.Property.State)
	}
	if a.Financing.LoanYears < MinLoanYears || a.Financing.LoanYears > MaxLoanYears {
		return fmt.Errorf("%w: loan_years must be between %d and %d", ErrInvalidInput, MinLoanYears, MaxLoanYears)
	}
	return nil
}

// Normalized returns a copy with enum aliases resolved.
func (a Application) Normalized() Application {
	if p, ok := ParsePropertyType(string(a.Property.Type)); ok {
		a.Property.Type = p
	}
	a.Applicant.EmploymentSector = EmploymentSector(strings.ToLower(strings.TrimSpace(string(a.Applicant.EmploymentSector))))
	a.Financing.BankID = strings.TrimSpace(a.Financing.BankID)
	return a
}

// LoanToValue is the requested financing share of the property value in
// percent, before any cap is applied.
func (p PropertyProfile) LoanToValue() float64 {
	if p.Value <= 0 {
		return 0
	}
	return (p.Value - p.DownPayment) / p.Value * 100
}

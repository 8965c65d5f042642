package http

import "masar-mortgage/internal/domain/mortgage"

type applicantReq struct {
	MonthlySalary      float64 `json:"monthly_salary"      validate:"gt=0,money"`
	MonthlyObligations float64 `json:"monthly_obligations" validate:"gte=0,money"`
	FamilySize         int     `json:"family_size"         validate:"gte=1,lte=20"`
	EmploymentSector   string  `json:"employment_sector"   validate:"required,sector"`
}

type propertyReq struct {
	Type        string  `json:"property_type"  validate:"required,proptype"`
	State       string  `json:"property_state" validate:"required,propstate"`
	Value       float64 `json:"property_value" validate:"gt=0,money"`
	DownPayment float64 `json:"down_payment"   validate:"gte=0,money"`
}

type financingReq struct {
	BankID    string `json:"bank_id"    validate:"required,bankid"`
	LoanYears int    `json:"loan_years" validate:"gte=1,lte=30"`
}

type applicationReq struct {
	Applicant applicantReq `json:"applicant"`
	Property  propertyReq  `json:"property"`
	Financing financingReq `json:"financing"`
}

func (r applicationReq) toDomain() mortgage.Application {
	return mortgage.Application{
		Applicant: mortgage.ApplicantProfile{
			MonthlySalary:      r.Applicant.MonthlySalary,
			MonthlyObligations: r.Applicant.MonthlyObligations,
			FamilySize:         r.Applicant.FamilySize,
			EmploymentSector:   mortgage.EmploymentSector(r.Applicant.EmploymentSector),
		},
		Property: mortgage.PropertyProfile{
			Type:        mortgage.PropertyType(r.Property.Type),
			State:       mortgage.PropertyState(r.Property.State),
			Value:       r.Property.Value,
			DownPayment: r.Property.DownPayment,
		},
		Financing: mortgage.FinancingTerms{BankID: r.Financing.BankID, LoanYears: r.Financing.LoanYears},
	}
}

// wizardReq carries a partially filled form, so the application itself is
// only checked per step by the wizard.
type wizardReq struct {
	Action      string               `json:"action" validate:"required,oneof=next back goto"`
	Target      string               `json:"target"`
	State       mortgage.Wizard      `json:"state"`
	Application mortgage.Application `json:"application"`
}

type compareReq struct {
	Principal float64  `json:"principal"  validate:"gte=100000,lte=5000000,money"`
	LoanYears int      `json:"loan_years" validate:"gte=5,lte=30"`
	BankIDs   []string `json:"bank_ids"   validate:"max=5,dive,bankid"`
}

type loginReq struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
	Redirect string `json:"redirect" validate:"max=512"`
}

type askReq struct {
	Question string              `json:"question" validate:"required,max=2000"`
	History  []historyMessageReq `json:"history"  validate:"max=50,dive"`
}

type historyMessageReq struct {
	Role    string `json:"role"    validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

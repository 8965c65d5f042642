package mortgage

import (
	"fmt"
	"math"
)

type RuleID string

const (
	RuleMinSalary       RuleID = "min_salary"
	RuleDebtToIncome    RuleID = "debt_to_income"
	RuleRetiredIncome   RuleID = "retired_income"
	RuleDownPayment     RuleID = "down_payment"
	RuleLandDownPayment RuleID = "land_down_payment"
	RuleCapacity        RuleID = "repayment_capacity"
)

type EligibilityVerdict struct {
	IsEligible bool   `json:"is_eligible"`
	Reason     string `json:"reason,omitempty"`
	Rule       RuleID `json:"rule,omitempty"`
}

func eligible() EligibilityVerdict { return EligibilityVerdict{IsEligible: true} }

func reject(rule RuleID, reason string) EligibilityVerdict {
	return EligibilityVerdict{IsEligible: false, Rule: rule, Reason: reason}
}

// CheckEligibility evaluates the financing rules in order; the first
// violated rule decides the verdict.
func CheckEligibility(a Application) EligibilityVerdict {
	salary := a.Applicant.MonthlySalary
	if salary < MinSalary {
		return reject(RuleMinSalary, fmt.Sprintf("salary below minimum (%.0f)", MinSalary))
	}

	if a.Applicant.MonthlyObligations/salary > MaxDebtToIncome {
		return reject(RuleDebtToIncome, fmt.Sprintf("existing obligations exceed %.0f%% of income", MaxDebtToIncome*100))
	}

	// Never fires while MinRetiredSalary < MinSalary.
	if a.Applicant.EmploymentSector == SectorRetired && salary < MinRetiredSalary {
		return reject(RuleRetiredIncome, "retirement income below minimum for retirees")
	}

	ptype, _ := ParsePropertyType(string(a.Property.Type))
	switch {
	case ptype.Residential():
		required := a.Property.Value * ResidentialDownPaymentPct
		if a.Property.DownPayment < required {
			return reject(RuleDownPayment, fmt.Sprintf(
				"down payment below required minimum (%.0f SAR, 10%% of property value; short by %.0f SAR)",
				math.Round(required), math.Round(required-a.Property.DownPayment)))
		}
	case ptype == PropertyLand:
		required := a.Property.Value * LandDownPaymentPct
		if a.Property.DownPayment < required {
			return reject(RuleLandDownPayment, fmt.Sprintf(
				"down payment below required minimum for land (%.0f SAR, 30%% of land value; short by %.0f SAR)",
				math.Round(required), math.Round(required-a.Property.DownPayment)))
		}
	}

	return eligible()
}

// CheckCapacity rejects applicants whose obligations already consume the
// permitted installment share, leaving no payment to finance a loan.
func CheckCapacity(a Application) EligibilityVerdict {
	if CappedMonthlyPayment(a.Applicant) <= 0 {
		return reject(RuleCapacity, "existing obligations leave no monthly repayment capacity")
	}
	return eligible()
}

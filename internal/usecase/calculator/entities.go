package calculator

import (
	"errors"

	"masar-mortgage/internal/domain/mortgage"
)

var ErrUnknownAction = errors.New("unknown wizard action")

// Recorder receives one call per calculation outcome.
type Recorder interface {
	Calculation(outcome string)
	Rejection(rule string)
}

type nopRecorder struct{}

func (nopRecorder) Calculation(string) {}
func (nopRecorder) Rejection(string)   {}

const (
	OutcomeEligible   = "eligible"
	OutcomeIneligible = "ineligible"
	OutcomeInvalid    = "invalid"
)

// Formatted holds the headline amounts as display strings.
type Formatted struct {
	MaxLoan        string `json:"max_loan"`
	MonthlyPayment string `json:"monthly_payment"`
	ActualPayment  string `json:"actual_payment"`
	SupportAmount  string `json:"support_amount"`
	SakaniSupport  string `json:"sakani_support"`
}

// Outcome is the answer to one calculation. Result and Caps are nil when
// the verdict is ineligible.
type Outcome struct {
	Verdict   mortgage.EligibilityVerdict `json:"verdict"`
	Result    *mortgage.MortgageResult    `json:"result,omitempty"`
	Caps      *mortgage.LoanCaps          `json:"caps,omitempty"`
	Formatted *Formatted                  `json:"formatted,omitempty"`
}

type WizardAction string

const (
	ActionNext WizardAction = "next"
	ActionBack WizardAction = "back"
	ActionGoTo WizardAction = "goto"
)

// WizardCommand carries the client-held wizard state with the form so far.
type WizardCommand struct {
	Action      WizardAction         `json:"action"`
	Target      mortgage.StepID      `json:"target,omitempty"`
	State       mortgage.Wizard      `json:"state"`
	Application mortgage.Application `json:"application"`
}

type WizardOutcome struct {
	State    mortgage.Wizard `json:"state"`
	Finished bool            `json:"finished"`
	Outcome  *Outcome        `json:"outcome,omitempty"`
}

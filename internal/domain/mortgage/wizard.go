package mortgage

import (
	"errors"
	"fmt"
)

var (
	ErrStepInvalid = errors.New("step is incomplete")
	ErrStepLocked  = errors.New("step not completed yet")
	ErrUnknownStep = errors.New("unknown step")
	ErrNoPrevious  = errors.New("already at first step")
)

type StepID string

const (
	StepPersonal StepID = "personal"
	StepProperty StepID = "property"
	StepLoan     StepID = "loan"
)

// Steps is the fixed wizard order.
var Steps = []StepID{StepPersonal, StepProperty, StepLoan}

func stepIndex(id StepID) int {
	for i, s := range Steps {
		if s == id {
			return i
		}
	}
	return -1
}

// StepValid reports whether the form fields owned by step allow moving on.
func StepValid(step StepID, a Application) bool {
	switch step {
	case StepPersonal:
		return a.Applicant.MonthlySalary >= MinSalary
	case StepProperty:
		return a.Property.Value > 0 && a.Property.DownPayment >= 0
	case StepLoan:
		return a.Financing.BankID != "" && a.Financing.LoanYears >= WizardMinLoanYears
	}
	return false
}

// Wizard tracks the current step and which steps were completed. Changing
// an earlier step does not reset later ones.
type Wizard struct {
	Current   StepID   `json:"current"`
	Completed []StepID `json:"completed"`
}

func NewWizard() Wizard { return Wizard{Current: StepPersonal} }

func (w Wizard) IsCompleted(step StepID) bool {
	for _, s := range w.Completed {
		if s == step {
			return true
		}
	}
	return false
}

func (w Wizard) check() error {
	if stepIndex(w.Current) < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownStep, w.Current)
	}
	for _, s := range w.Completed {
		if stepIndex(s) < 0 {
			return fmt.Errorf("%w: %q", ErrUnknownStep, s)
		}
	}
	return nil
}

// Next completes the current step and moves forward. finished is true when
// the last step was completed; the caller then runs the calculation.
func (w Wizard) Next(a Application) (next Wizard, finished bool, err error) {
	if err := w.check(); err != nil {
		return w, false, err
	}
	if !StepValid(w.Current, a) {
		return w, false, fmt.Errorf("%w: %s", ErrStepInvalid, w.Current)
	}

	next = Wizard{Current: w.Current, Completed: append([]StepID(nil), w.Completed...)}
	if !next.IsCompleted(w.Current) {
		next.Completed = append(next.Completed, w.Current)
	}

	i := stepIndex(w.Current)
	if i == len(Steps)-1 {
		return next, true, nil
	}
	next.Current = Steps[i+1]
	return next, false, nil
}

func (w Wizard) Back() (Wizard, error) {
	if err := w.check(); err != nil {
		return w, err
	}
	i := stepIndex(w.Current)
	if i == 0 {
		return w, ErrNoPrevious
	}
	w.Current = Steps[i-1]
	return w, nil
}

// GoTo jumps to a step that was already completed.
func (w Wizard) GoTo(step StepID) (Wizard, error) {
	if err := w.check(); err != nil {
		return w, err
	}
	if stepIndex(step) < 0 {
		return w, fmt.Errorf("%w: %q", ErrUnknownStep, step)
	}
	if !w.IsCompleted(step) {
		return w, fmt.Errorf("%w: %s", ErrStepLocked, step)
	}
	w.Current = step
	return w, nil
}

package calculator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"masar-mortgage/internal/domain/bank"
	"masar-mortgage/internal/domain/mortgage"
	"masar-mortgage/pkg/currency"
)

type Usecase struct {
	banks bank.Repository
	rec   Recorder
}

func NewUsecase(banks bank.Repository, rec Recorder) *Usecase {
	if rec == nil {
		rec = nopRecorder{}
	}
	return &Usecase{banks: banks, rec: rec}
}

// CheckEligibility returns the verdict alone. Capacity is part of it: an
// applicant whose obligations use up the installment share cannot borrow.
func (u *Usecase) CheckEligibility(ctx context.Context, a mortgage.Application) (mortgage.EligibilityVerdict, error) {
	a = a.Normalized()
	if err := a.Validate(); err != nil {
		return mortgage.EligibilityVerdict{}, err
	}
	return verdictFor(a), nil
}

func verdictFor(a mortgage.Application) mortgage.EligibilityVerdict {
	v := mortgage.CheckEligibility(a)
	if !v.IsEligible {
		return v
	}
	return mortgage.CheckCapacity(a)
}

// Calculate gates on eligibility, then prices the maximum loan at the
// selected bank and compares it across the catalog.
func (u *Usecase) Calculate(ctx context.Context, a mortgage.Application) (*Outcome, error) {
	a = a.Normalized()
	if err := a.Validate(); err != nil {
		u.rec.Calculation(OutcomeInvalid)
		return nil, err
	}

	v := verdictFor(a)
	if !v.IsEligible {
		u.rec.Calculation(OutcomeIneligible)
		u.rec.Rejection(string(v.Rule))
		slog.InfoContext(ctx, "calculator: ineligible", "rule", v.Rule)
		return &Outcome{Verdict: v}, nil
	}

	selected, err := u.banks.GetByBankID(ctx, a.Financing.BankID)
	if errors.Is(err, bank.ErrNotFound) {
		u.rec.Calculation(OutcomeInvalid)
		return nil, fmt.Errorf("%w: %s", mortgage.ErrUnknownBank, a.Financing.BankID)
	}
	if err != nil {
		return nil, err
	}
	catalog, err := u.banks.List(ctx)
	if err != nil {
		return nil, err
	}

	q := mortgage.BuildQuote(a, selected.ToDomain(), bank.ToDomainList(catalog))
	res := q.Result()
	caps := q.Caps
	u.rec.Calculation(OutcomeEligible)

	return &Outcome{
		Verdict:   v,
		Result:    &res,
		Caps:      &caps,
		Formatted: format(res),
	}, nil
}

func format(r mortgage.MortgageResult) *Formatted {
	tag := currency.ArabicSaudi
	return &Formatted{
		MaxLoan:        currency.FormatSARCode(tag, r.MaxLoan),
		MonthlyPayment: currency.FormatSARCode(tag, r.MonthlyPayment),
		ActualPayment:  currency.FormatSARCode(tag, r.ActualPayment),
		SupportAmount:  currency.FormatSARCode(tag, r.SupportAmount),
		SakaniSupport:  currency.FormatSARCode(tag, r.SakaniSupport),
	}
}

// Advance applies one wizard command. Completing the last step runs
// Calculate on the submitted application.
func (u *Usecase) Advance(ctx context.Context, cmd WizardCommand) (*WizardOutcome, error) {
	state := cmd.State
	if state.Current == "" {
		state = mortgage.NewWizard()
	}
	a := cmd.Application.Normalized()

	switch cmd.Action {
	case ActionNext:
		next, finished, err := state.Next(a)
		if err != nil {
			return nil, err
		}
		out := &WizardOutcome{State: next, Finished: finished}
		if finished {
			if out.Outcome, err = u.Calculate(ctx, a); err != nil {
				return nil, err
			}
		}
		return out, nil
	case ActionBack:
		prev, err := state.Back()
		if err != nil {
			return nil, err
		}
		return &WizardOutcome{State: prev}, nil
	case ActionGoTo:
		moved, err := state.GoTo(cmd.Target)
		if err != nil {
			return nil, err
		}
		return &WizardOutcome{State: moved}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
}

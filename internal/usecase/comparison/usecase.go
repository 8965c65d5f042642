package comparison

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"masar-mortgage/internal/domain/bank"
	"masar-mortgage/internal/domain/mortgage"
)

type Usecase struct{ banks bank.Repository }

func NewUsecase(banks bank.Repository) *Usecase { return &Usecase{banks: banks} }

func (r Request) validate() error {
	if math.IsNaN(r.Principal) || r.Principal < MinPrincipal || r.Principal > MaxPrincipal {
		return fmt.Errorf("%w: principal must be between %.0f and %.0f", mortgage.ErrInvalidInput, MinPrincipal, MaxPrincipal)
	}
	if r.LoanYears < mortgage.WizardMinLoanYears || r.LoanYears > mortgage.MaxLoanYears {
		return fmt.Errorf("%w: loan_years must be between %d and %d", mortgage.ErrInvalidInput, mortgage.WizardMinLoanYears, mortgage.MaxLoanYears)
	}
	if len(r.BankIDs) > mortgage.MaxCompareBanks {
		return fmt.Errorf("%w: at most %d banks can be compared", mortgage.ErrInvalidInput, mortgage.MaxCompareBanks)
	}
	return nil
}

// selection resolves the requested banks in request order, dropping
// repeats. No ids means the whole catalog.
func (u *Usecase) selection(ctx context.Context, ids []string) ([]bank.Bank, error) {
	if len(ids) == 0 {
		return u.banks.List(ctx)
	}
	seen := make(map[string]struct{}, len(ids))
	uniq := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}

	out, err := u.banks.ListByBankIDs(ctx, uniq)
	if errors.Is(err, bank.ErrNotFound) {
		return nil, fmt.Errorf("%w: %v", mortgage.ErrUnknownBank, err)
	}
	return out, err
}

func (u *Usecase) Compare(ctx context.Context, req Request) (*Table, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	banks, err := u.selection(ctx, req.BankIDs)
	if err != nil {
		return nil, err
	}

	data := mortgage.RoundComparison(mortgage.CompareBanks(bank.ToDomainList(banks), req.Principal, req.LoanYears))
	t := &Table{Principal: req.Principal, LoanYears: req.LoanYears, Rows: make([]Row, len(data))}
	best := math.Inf(1)
	for i, d := range data {
		t.Rows[i] = Row{ComparisonBankData: d, Color: banks[i].ColorHex}
		if d.TotalPayment < best {
			best = d.TotalPayment
			t.Cheapest = d.BankID
		}
	}
	return t, nil
}

// Schedules builds the per-period schedule of each selected bank and the
// sampled balance curve for charting.
func (u *Usecase) Schedules(ctx context.Context, req Request) (*Schedules, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	banks, err := u.selection(ctx, req.BankIDs)
	if err != nil {
		return nil, err
	}

	out := &Schedules{Schedules: make([]mortgage.AmortizationSchedule, 0, len(banks))}
	for _, b := range banks {
		out.Schedules = append(out.Schedules, mortgage.BuildSchedule(b.ToDomain(), req.Principal, req.LoanYears))
	}
	out.Points = mortgage.SampleBalances(out.Schedules, req.Principal, req.LoanYears)
	return out, nil
}

package bankmock

import (
	"context"

	domain "masar-mortgage/internal/domain/bank"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset lookups return context.Canceled; unset writes are no-ops.
type Repo struct {
	ListFn          func(ctx context.Context) ([]domain.Bank, error)
	GetByBankIDFn   func(ctx context.Context, bankID string) (*domain.Bank, error)
	ListByBankIDsFn func(ctx context.Context, ids []string) ([]domain.Bank, error)
	UpsertFn        func(ctx context.Context, b *domain.Bank) error
}

// Catalog returns a Repo serving a fixed in-memory catalog.
func Catalog(banks ...domain.Bank) *Repo {
	return &Repo{
		ListFn: func(context.Context) ([]domain.Bank, error) {
			return append([]domain.Bank(nil), banks...), nil
		},
		GetByBankIDFn: func(_ context.Context, id string) (*domain.Bank, error) {
			for i := range banks {
				if banks[i].BankID == id {
					b := banks[i]
					return &b, nil
				}
			}
			return nil, domain.ErrNotFound
		},
		ListByBankIDsFn: func(_ context.Context, ids []string) ([]domain.Bank, error) {
			out := make([]domain.Bank, 0, len(ids))
			for _, id := range ids {
				found := false
				for _, b := range banks {
					if b.BankID == id {
						out = append(out, b)
						found = true
						break
					}
				}
				if !found {
					return nil, domain.ErrNotFound
				}
			}
			return out, nil
		},
	}
}

func (m *Repo) List(ctx context.Context) ([]domain.Bank, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByBankID(ctx context.Context, bankID string) (*domain.Bank, error) {
	if m.GetByBankIDFn != nil {
		return m.GetByBankIDFn(ctx, bankID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByBankIDs(ctx context.Context, ids []string) ([]domain.Bank, error) {
	if m.ListByBankIDsFn != nil {
		return m.ListByBankIDsFn(ctx, ids)
	}
	return nil, context.Canceled
}

func (m *Repo) Upsert(ctx context.Context, b *domain.Bank) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, b)
	}
	return nil
}

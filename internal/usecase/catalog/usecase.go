package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"masar-mortgage/internal/config"
	"masar-mortgage/internal/domain/bank"
	"masar-mortgage/internal/domain/uow"
)

type Usecase struct {
	uow   uow.UnitOfWork
	banks bank.Repository
}

func NewUsecase(u uow.UnitOfWork, banks bank.Repository) *Usecase {
	return &Usecase{uow: u, banks: banks}
}

// Sync upserts every entry in one transaction; file order becomes
// sort order. Banks missing from the file are left untouched.
func (u *Usecase) Sync(ctx context.Context, entries []config.BankEntry) error {
	if len(entries) == 0 {
		return bank.ErrEmptyCatalog
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		for i, e := range entries {
			b := &bank.Bank{
				BankID:            e.ID,
				Name:              e.Name,
				AnnualRatePercent: e.Rate,
				ColorHex:          e.Color,
				SortOrder:         i,
			}
			if err := r.Banks.Upsert(ctx, b); err != nil {
				return fmt.Errorf("upsert bank %s: %w", e.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "catalog: synced", "banks", len(entries))
	return nil
}

func (u *Usecase) List(ctx context.Context) ([]bank.Bank, error) {
	out, err := u.banks.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, bank.ErrEmptyCatalog
	}
	return out, nil
}

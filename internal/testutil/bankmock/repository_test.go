package bankmock

import (
	"context"
	"errors"
	"testing"

	domain "masar-mortgage/internal/domain/bank"
)

func TestRepo_Defaults(t *testing.T) {
	ctx := context.Background()
	m := &Repo{}

	if _, err := m.List(ctx); err != context.Canceled {
		t.Fatalf("List default: want context.Canceled, got %v", err)
	}
	if _, err := m.GetByBankID(ctx, "snb"); err != context.Canceled {
		t.Fatalf("GetByBankID default: want context.Canceled, got %v", err)
	}
	if _, err := m.ListByBankIDs(ctx, []string{"snb"}); err != context.Canceled {
		t.Fatalf("ListByBankIDs default: want context.Canceled, got %v", err)
	}
	if err := m.Upsert(ctx, &domain.Bank{}); err != nil {
		t.Fatalf("Upsert default: want nil, got %v", err)
	}
}

func TestRepo_UpsertUsesFunc(t *testing.T) {
	ctx := context.Background()
	b := &domain.Bank{BankID: "snb"}
	wantErr := errors.New("boom")

	called := false
	m := &Repo{UpsertFn: func(gotCtx context.Context, got *domain.Bank) error {
		called = true
		if gotCtx != ctx || got != b {
			t.Fatalf("args not forwarded")
		}
		return wantErr
	}}
	if err := m.Upsert(ctx, b); !errors.Is(err, wantErr) {
		t.Fatalf("Upsert: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("UpsertFn not called")
	}
}

func TestCatalog(t *testing.T) {
	ctx := context.Background()
	m := Catalog(
		domain.Bank{BankID: "riyad", Name: "Riyad Bank", AnnualRatePercent: 3.70},
		domain.Bank{BankID: "snb", Name: "Saudi National Bank", AnnualRatePercent: 3.90},
	)

	all, err := m.List(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("List: %v %v", all, err)
	}
	b, err := m.GetByBankID(ctx, "snb")
	if err != nil || b.Name != "Saudi National Bank" {
		t.Fatalf("GetByBankID: %+v %v", b, err)
	}
	if _, err := m.GetByBankID(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByBankID unknown: %v", err)
	}
	sub, err := m.ListByBankIDs(ctx, []string{"snb", "riyad"})
	if err != nil || sub[0].BankID != "snb" || sub[1].BankID != "riyad" {
		t.Fatalf("ListByBankIDs order: %+v %v", sub, err)
	}
	if _, err := m.ListByBankIDs(ctx, []string{"snb", "nope"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("ListByBankIDs unknown: %v", err)
	}
}

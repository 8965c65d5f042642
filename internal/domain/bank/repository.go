package bank

import "context"

type Repository interface {
	// List returns the catalog ordered by sort_order.
	List(ctx context.Context) ([]Bank, error)

	GetByBankID(ctx context.Context, bankID string) (*Bank, error)

	// ListByBankIDs keeps the order of ids; any unknown id is ErrNotFound
	ListByBankIDs(ctx context.Context, ids []string) ([]Bank, error)

	// Upsert inserts or updates by bank_id
	Upsert(ctx context.Context, b *Bank) error
}

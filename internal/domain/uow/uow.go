package uow

import (
	"context"

	"masar-mortgage/internal/domain/bank"
)

type Repos struct {
	Banks bank.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}

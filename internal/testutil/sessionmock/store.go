package sessionmock

import (
	"context"
	"time"

	domain "masar-mortgage/internal/domain/session"
)

var _ domain.Store = (*Store)(nil)

// Store is a function-backed mock that satisfies domain.Store.
type Store struct {
	InitFn    func(ctx context.Context, s *domain.Session, ttl time.Duration) error
	ReadFn    func(ctx context.Context, id string) (*domain.Session, error)
	RefreshFn func(ctx context.Context, s *domain.Session, ttl time.Duration) error
	ExpireFn  func(ctx context.Context, id string) error
}

func (m *Store) Init(ctx context.Context, s *domain.Session, ttl time.Duration) error {
	if m.InitFn != nil {
		return m.InitFn(ctx, s, ttl)
	}
	return nil
}

func (m *Store) Read(ctx context.Context, id string) (*domain.Session, error) {
	if m.ReadFn != nil {
		return m.ReadFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Store) Refresh(ctx context.Context, s *domain.Session, ttl time.Duration) error {
	if m.RefreshFn != nil {
		return m.RefreshFn(ctx, s, ttl)
	}
	return nil
}

func (m *Store) Expire(ctx context.Context, id string) error {
	if m.ExpireFn != nil {
		return m.ExpireFn(ctx, id)
	}
	return nil
}

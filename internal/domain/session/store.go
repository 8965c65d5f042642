package session

import (
	"context"
	"time"
)

type Store interface {
	// Init stores a new session with the given TTL.
	Init(ctx context.Context, s *Session, ttl time.Duration) error

	// Read returns ErrNotFound when the session is missing or expired.
	Read(ctx context.Context, id string) (*Session, error)

	// Refresh rewrites the session and restarts its TTL.
	Refresh(ctx context.Context, s *Session, ttl time.Duration) error

	Expire(ctx context.Context, id string) error
}

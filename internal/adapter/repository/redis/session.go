package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sessionDomain "masar-mortgage/internal/domain/session"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "masar:session:"

func sessionKey(id string) string { return keyPrefix + id }

type SessionStore struct{ rdb *goredis.Client }

func NewSessionStore(rdb *goredis.Client) *SessionStore { return &SessionStore{rdb: rdb} }

func (s *SessionStore) Init(ctx context.Context, sess *sessionDomain.Session, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	ok, err := s.rdb.SetNX(ctx, sessionKey(sess.ID), payload, ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("session %s already exists", sess.ID)
	}
	return nil
}

func (s *SessionStore) Read(ctx context.Context, id string) (*sessionDomain.Session, error) {
	v, err := s.rdb.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, sessionDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var out sessionDomain.Session
	if err := json.Unmarshal(v, &out); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &out, nil
}

// Refresh only rewrites a live session; an expired one stays gone.
func (s *SessionStore) Refresh(ctx context.Context, sess *sessionDomain.Session, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	ok, err := s.rdb.SetXX(ctx, sessionKey(sess.ID), payload, ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return sessionDomain.ErrNotFound
	}
	return nil
}

func (s *SessionStore) Expire(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKey(id)).Err()
}

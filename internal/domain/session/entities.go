package session

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("session not found")
)

// Session is the server-side record behind a login token. It lives only in
// the session store and expires with its TTL.
type Session struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	CSRFToken  string    `json:"csrf_token"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
}

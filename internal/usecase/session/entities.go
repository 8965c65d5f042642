package session

import (
	"errors"
	"time"

	"masar-mortgage/internal/domain/session"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingName        = errors.New("name is required")
	ErrInvalidToken       = errors.New("invalid session token")
	ErrSessionExpired     = errors.New("session expired")
)

// ProtectedPaths need a live session.
var ProtectedPaths = []string{"/calculator", "/ai-assistant", "/bank-comparison"}

type Config struct {
	Secret       []byte
	DemoPassword string
	TTL          time.Duration
	Issuer       string
}

type LoginInput struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Redirect string `json:"redirect,omitempty"`
}

// Authenticated is what the client holds after login or resume.
type Authenticated struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Session   session.Session `json:"session"`
	Redirect  string          `json:"redirect,omitempty"`
}

// LoginRecorder receives "ok" or "rejected" per login attempt.
type LoginRecorder interface{ Login(result string) }

type nopRecorder struct{}

func (nopRecorder) Login(string) {}

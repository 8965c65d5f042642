package session

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"
	"time"

	"masar-mortgage/internal/domain/session"
	"masar-mortgage/pkg/id"

	"github.com/google/uuid"
)

type Usecase struct {
	store session.Store
	cfg   Config
	rec   LoginRecorder
	now   func() time.Time
}

func NewUsecase(store session.Store, cfg Config, rec LoginRecorder) *Usecase {
	if rec == nil {
		rec = nopRecorder{}
	}
	if cfg.Issuer == "" {
		cfg.Issuer = "masar"
	}
	return &Usecase{store: store, cfg: cfg, rec: rec, now: func() time.Time { return time.Now().UTC() }}
}

// WithClock replaces the time source; tests use it to age sessions.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

// Login checks the access password and opens a session.
func (u *Usecase) Login(ctx context.Context, in LoginInput) (*Authenticated, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrMissingName
	}
	if subtle.ConstantTimeCompare([]byte(in.Password), []byte(u.cfg.DemoPassword)) != 1 {
		u.rec.Login("rejected")
		return nil, ErrInvalidCredentials
	}

	now := u.now()
	s := &session.Session{
		ID:         id.NewID32(),
		UserID:     uuid.NewString(),
		Name:       name,
		CSRFToken:  id.NewID32(),
		CreatedAt:  now,
		LastActive: now,
	}
	if err := u.store.Init(ctx, s, u.cfg.TTL); err != nil {
		return nil, err
	}
	tok, exp, err := u.issueToken(s.ID, s.UserID, s.Name, now)
	if err != nil {
		return nil, err
	}
	u.rec.Login("ok")
	slog.InfoContext(ctx, "session: login", "user_id", s.UserID)
	return &Authenticated{Token: tok, ExpiresAt: exp, Session: *s, Redirect: SanitizeRedirect(in.Redirect)}, nil
}

// Resume validates the token, slides the session TTL and returns a fresh
// token carrying the new expiry.
func (u *Usecase) Resume(ctx context.Context, token string) (*Authenticated, error) {
	c, err := u.parseToken(token)
	if err != nil {
		return nil, err
	}
	s, err := u.store.Read(ctx, c.ID)
	if errors.Is(err, session.ErrNotFound) {
		return nil, ErrSessionExpired
	}
	if err != nil {
		return nil, err
	}

	now := u.now()
	if now.Sub(s.LastActive) > u.cfg.TTL {
		if err := u.store.Expire(ctx, s.ID); err != nil {
			slog.WarnContext(ctx, "session: expire idle session failed", "session_id", s.ID, "err", err)
		}
		return nil, ErrSessionExpired
	}
	s.LastActive = now
	if err := u.store.Refresh(ctx, s, u.cfg.TTL); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, err
	}
	tok, exp, err := u.issueToken(s.ID, s.UserID, s.Name, now)
	if err != nil {
		return nil, err
	}
	return &Authenticated{Token: tok, ExpiresAt: exp, Session: *s}, nil
}

// Logout ends the session. An already expired token logs out silently.
func (u *Usecase) Logout(ctx context.Context, token string) error {
	c, err := u.parseToken(token)
	if errors.Is(err, ErrSessionExpired) {
		return nil
	}
	if err != nil {
		return err
	}
	return u.store.Expire(ctx, c.ID)
}

// CheckAccess reports whether path may be shown to the caller.
func CheckAccess(path string, authenticated bool) bool {
	return authenticated || !IsProtected(path)
}

func IsProtected(path string) bool {
	path = strings.TrimSuffix(path, "/")
	for _, p := range ProtectedPaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// SanitizeRedirect keeps only local absolute paths; anything else becomes "".
func SanitizeRedirect(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.ContainsAny(raw, "\\\r\n") {
		return ""
	}
	return raw
}

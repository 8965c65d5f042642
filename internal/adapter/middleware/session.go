package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	ucSession "masar-mortgage/internal/usecase/session"

	"github.com/labstack/echo/v4"
)

// Resumer is the part of the session use case the guard needs.
type Resumer interface {
	Resume(ctx context.Context, token string) (*ucSession.Authenticated, error)
}

// SessionGuard requires a live session. Each request slides the expiry and
// the new token is returned in X-Session-Token.
func SessionGuard(sessions Resumer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok := BearerToken(c.Request())
			if tok == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			auth, err := sessions.Resume(c.Request().Context(), tok)
			switch {
			case errors.Is(err, ucSession.ErrSessionExpired):
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "session expired"})
			case errors.Is(err, ucSession.ErrInvalidToken):
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid session token"})
			case err != nil:
				slog.ErrorContext(c.Request().Context(), "session guard: resume failed", "err", err)
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "session store unavailable"})
			}
			c.Set(ctxKeySession, auth)
			c.Response().Header().Set(HeaderSessionToken, auth.Token)
			return next(c)
		}
	}
}

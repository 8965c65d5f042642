package middleware

import (
	"net/http"
	"strings"

	ucSession "masar-mortgage/internal/usecase/session"

	"github.com/labstack/echo/v4"
)

const (
	ctxKeySession = "masar.session"

	// HeaderSessionToken carries the refreshed token back to the client.
	HeaderSessionToken = "X-Session-Token"
)

// BearerToken extracts the token from "Authorization: Bearer <token>".
func BearerToken(r *http.Request) string {
	h := strings.TrimSpace(r.Header.Get(echo.HeaderAuthorization))
	const prefix = "bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}

// SessionFrom returns the session resumed by SessionGuard, if any.
func SessionFrom(c echo.Context) (*ucSession.Authenticated, bool) {
	a, ok := c.Get(ctxKeySession).(*ucSession.Authenticated)
	return a, ok && a != nil
}

func rateKey(route, subject string) string {
	return "masar:rate:" + route + ":" + subject
}

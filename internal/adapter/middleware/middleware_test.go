package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainSession "masar-mortgage/internal/domain/session"
	ucSession "masar-mortgage/internal/usecase/session"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

type fakeResumer struct {
	ResumeFn func(ctx context.Context, token string) (*ucSession.Authenticated, error)
}

func (f *fakeResumer) Resume(ctx context.Context, token string) (*ucSession.Authenticated, error) {
	return f.ResumeFn(ctx, token)
}

var _ Resumer = (*fakeResumer)(nil)

func newMiniredisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close(); mr.Close() })
	return mr, rdb
}

func doReq(e *echo.Echo, method, path string, hdr map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func okHandler(c echo.Context) error {
	if s, ok := SessionFrom(c); ok {
		return c.String(http.StatusOK, s.Session.ID)
	}
	return c.String(http.StatusOK, "anon")
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc", "abc"},
		{"bearer   abc ", "abc"},
		{"Basic abc", ""},
		{"Bearer", ""},
		{"", ""},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, tt.header)
		if got := BearerToken(req); got != tt.want {
			t.Fatalf("BearerToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestSessionGuard(t *testing.T) {
	resumer := &fakeResumer{ResumeFn: func(_ context.Context, token string) (*ucSession.Authenticated, error) {
		switch token {
		case "good":
			return &ucSession.Authenticated{Token: "fresh", Session: domainSession.Session{ID: "s1"}}, nil
		case "old":
			return nil, ucSession.ErrSessionExpired
		case "bad":
			return nil, ucSession.ErrInvalidToken
		}
		return nil, errors.New("redis down")
	}}
	e := echo.New()
	e.GET("/banks", okHandler, SessionGuard(resumer))

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"expired", "Bearer old", http.StatusUnauthorized},
		{"invalid", "Bearer bad", http.StatusUnauthorized},
		{"store down", "Bearer boom", http.StatusServiceUnavailable},
		{"ok", "Bearer good", http.StatusOK},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rec := doReq(e, http.MethodGet, "/banks", map[string]string{echo.HeaderAuthorization: tt.header})
			if rec.Code != tt.code {
				t.Fatalf("status=%d, want %d (body=%s)", rec.Code, tt.code, rec.Body.String())
			}
			if tt.code == http.StatusOK {
				if rec.Body.String() != "s1" {
					t.Fatalf("session not in context: %s", rec.Body.String())
				}
				if rec.Header().Get(HeaderSessionToken) != "fresh" {
					t.Fatalf("refreshed token header missing")
				}
			}
		})
	}
}

func TestRateLimit_FixedWindow(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	e := echo.New()
	e.POST("/assistant/ask", okHandler, RateLimit(rdb, 2, time.Minute))

	hdr := map[string]string{echo.HeaderXRealIP: "10.0.0.1"}
	for i := 0; i < 2; i++ {
		if rec := doReq(e, http.MethodPost, "/assistant/ask", hdr); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status=%d", i+1, rec.Code)
		}
	}
	rec := doReq(e, http.MethodPost, "/assistant/ask", hdr)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("third request status=%d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" || rec.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Fatalf("missing rate headers: %v", rec.Header())
	}

	// another caller has its own budget
	if rec := doReq(e, http.MethodPost, "/assistant/ask", map[string]string{echo.HeaderXRealIP: "10.0.0.2"}); rec.Code != http.StatusOK {
		t.Fatalf("other ip status=%d", rec.Code)
	}

	mr.FastForward(time.Minute + time.Second)
	if rec := doReq(e, http.MethodPost, "/assistant/ask", hdr); rec.Code != http.StatusOK {
		t.Fatalf("after window status=%d", rec.Code)
	}
}

func TestRateLimit_KeyedBySession(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	resumer := &fakeResumer{ResumeFn: func(_ context.Context, token string) (*ucSession.Authenticated, error) {
		return &ucSession.Authenticated{Token: token, Session: domainSession.Session{ID: token}}, nil
	}}
	e := echo.New()
	e.POST("/assistant/ask", okHandler, SessionGuard(resumer), RateLimit(rdb, 1, time.Minute))

	if rec := doReq(e, http.MethodPost, "/assistant/ask", map[string]string{echo.HeaderAuthorization: "Bearer a"}); rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	if !mr.Exists(rateKey("/assistant/ask", "session:a")) {
		t.Fatalf("expected session-scoped key, have %v", mr.Keys())
	}
	if rec := doReq(e, http.MethodPost, "/assistant/ask", map[string]string{echo.HeaderAuthorization: "Bearer a"}); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second status=%d", rec.Code)
	}
	if rec := doReq(e, http.MethodPost, "/assistant/ask", map[string]string{echo.HeaderAuthorization: "Bearer b"}); rec.Code != http.StatusOK {
		t.Fatalf("other session status=%d", rec.Code)
	}
}

func TestRateLimit_StoreDown(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	mr.Close()
	e := echo.New()
	e.POST("/assistant/ask", okHandler, RateLimit(rdb, 5, time.Minute))

	if rec := doReq(e, http.MethodPost, "/assistant/ask", nil); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status=%d, want 503", rec.Code)
	}
}

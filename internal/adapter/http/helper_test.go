package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	redisrepo "masar-mortgage/internal/adapter/repository/redis"
	"masar-mortgage/internal/domain/bank"
	"masar-mortgage/internal/testutil/bankmock"
	"masar-mortgage/internal/testutil/uowmock"
	"masar-mortgage/internal/usecase/assistant"
	"masar-mortgage/internal/usecase/calculator"
	"masar-mortgage/internal/usecase/catalog"
	"masar-mortgage/internal/usecase/comparison"
	ucSession "masar-mortgage/internal/usecase/session"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

type stubProvider struct{ answer string }

func (s stubProvider) Name() string { return "gemini" }

func (s stubProvider) Ask(context.Context, string, []assistant.Message) (string, error) {
	return s.answer, nil
}

// newTestServer wires the real use cases over an in-memory catalog and a
// miniredis-backed session store.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close(); mr.Close() })

	banks := bankmock.Catalog(
		bank.Bank{BankID: "riyad", Name: "Riyad Bank", AnnualRatePercent: 3.70, ColorHex: "#3b82f6"},
		bank.Bank{BankID: "snb", Name: "Saudi National Bank", AnnualRatePercent: 3.90, ColorHex: "#10b981"},
		bank.Bank{BankID: "alrajhi", Name: "Al Rajhi Bank", AnnualRatePercent: 4.10, ColorHex: "#f59e0b"},
		bank.Bank{BankID: "jazira", Name: "Bank AlJazira", AnnualRatePercent: 3.64, ColorHex: "#ef4444"},
	)
	sessions := ucSession.NewUsecase(redisrepo.NewSessionStore(rdb), ucSession.Config{
		Secret:       []byte(strings.Repeat("s", 32)),
		DemoPassword: "123456",
		TTL:          2 * time.Hour,
	}, nil)

	e := echo.New()
	Register(e, Deps{
		Sessions:        sessions,
		Calculator:      calculator.NewUsecase(banks, nil),
		Catalog:         catalog.NewUsecase(uowmock.New(), banks),
		Comparison:      comparison.NewUsecase(banks),
		Assistant:       assistant.NewChain(time.Second, nil, stubProvider{answer: "**دعم سكني** متاح"}),
		Redis:           rdb,
		AssistantPerMin: 2,
	})
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo) string {
	t.Helper()
	rec := doJSON(t, e, stdhttp.MethodPost, "/auth/login", "", map[string]string{"name": "سارة", "password": "123456"})
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("login status=%d body=%s", rec.Code, rec.Body.String())
	}
	var auth ucSession.Authenticated
	if err := json.Unmarshal(rec.Body.Bytes(), &auth); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	return auth.Token
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("bad json: %v; raw=%s", err, rec.Body.String())
	}
	return v
}

func calcBody() map[string]any {
	return map[string]any{
		"applicant": map[string]any{
			"monthly_salary":      10000,
			"monthly_obligations": 0,
			"family_size":         3,
			"employment_sector":   "government",
		},
		"property": map[string]any{
			"property_type":  "apartment",
			"property_state": "ready",
			"property_value": 500000,
			"down_payment":   50000,
		},
		"financing": map[string]any{"bank_id": "alrajhi", "loan_years": 25},
	}
}

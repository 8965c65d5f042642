package http

import (
	"net/http"
	"time"

	"masar-mortgage/internal/adapter/middleware"
	"masar-mortgage/internal/usecase/assistant"
	"masar-mortgage/internal/usecase/calculator"
	"masar-mortgage/internal/usecase/catalog"
	"masar-mortgage/internal/usecase/comparison"
	ucSession "masar-mortgage/internal/usecase/session"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Deps is everything the routes need.
type Deps struct {
	Sessions   *ucSession.Usecase
	Calculator *calculator.Usecase
	Catalog    *catalog.Usecase
	Comparison *comparison.Usecase
	Assistant  *assistant.Chain

	Redis           *redis.Client
	AssistantPerMin int
	MetricsHandler  http.Handler
	ReadyChecks     map[string]Check
}

func Register(e *echo.Echo, d Deps) {
	e.Validator = NewValidator()

	h := NewHandler(d.ReadyChecks)
	auth := NewAuthHandler(d.Sessions)
	mortgageH := NewMortgageHandler(d.Calculator)
	banks := NewBankHandler(d.Catalog, d.Comparison)
	ask := NewAssistantHandler(d.Assistant)

	e.GET("/health", h.Health)
	e.GET("/ready", h.Ready)
	if d.MetricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(d.MetricsHandler))
	}

	e.POST("/auth/login", auth.Login)
	e.GET("/auth/access", auth.Access)

	guard := middleware.SessionGuard(d.Sessions)
	e.POST("/auth/logout", auth.Logout, guard)
	e.GET("/auth/session", auth.Session, guard)

	e.GET("/banks", banks.List, guard)
	e.POST("/banks/compare", banks.Compare, guard)
	e.POST("/banks/schedules", banks.Schedules, guard)

	e.POST("/mortgage/eligibility", mortgageH.Eligibility, guard)
	e.POST("/mortgage/calculate", mortgageH.Calculate, guard)
	e.POST("/mortgage/wizard", mortgageH.Wizard, guard)

	e.POST("/assistant/ask", ask.Ask, guard, middleware.RateLimit(d.Redis, d.AssistantPerMin, time.Minute))
}

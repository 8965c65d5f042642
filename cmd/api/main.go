package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "masar-mortgage/internal/adapter/http"
	"masar-mortgage/internal/adapter/llm"
	"masar-mortgage/internal/adapter/repository/mysql"
	redisrepo "masar-mortgage/internal/adapter/repository/redis"
	"masar-mortgage/internal/config"
	"masar-mortgage/internal/domain/bank"
	"masar-mortgage/internal/infrastructure/cache"
	"masar-mortgage/internal/infrastructure/db"
	"masar-mortgage/internal/infrastructure/logging"
	"masar-mortgage/internal/infrastructure/metrics"
	"masar-mortgage/internal/usecase/assistant"
	"masar-mortgage/internal/usecase/calculator"
	"masar-mortgage/internal/usecase/catalog"
	"masar-mortgage/internal/usecase/comparison"
	ucSession "masar-mortgage/internal/usecase/session"
)

func main() {
	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "err", err)
		os.Exit(1)
	}
	if err := run(cfg); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN(), logging.GormLevel(cfg.GormLogLevel))
	if err != nil {
		return err
	}
	if err := gdb.AutoMigrate(&bank.Bank{}); err != nil {
		return err
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		return err
	}
	defer rdb.Close()

	m := metrics.New()
	banks := mysql.NewBankRepository(gdb)
	catalogUC := catalog.NewUsecase(mysql.NewGormUoW(gdb), banks)

	entries, err := config.LoadBankCatalog(cfg.BankCatalogPath)
	if err != nil {
		return err
	}
	if err := catalogUC.Sync(ctx, entries); err != nil {
		return err
	}

	sessions := ucSession.NewUsecase(redisrepo.NewSessionStore(rdb), ucSession.Config{
		Secret:       []byte(cfg.SessionSecret),
		DemoPassword: cfg.DemoPassword,
		TTL:          cfg.SessionTTL(),
	}, m)

	providers := llm.Providers(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.DeepSeekAPIKey, cfg.DeepSeekModel, cfg.OllamaURL, cfg.OllamaModel)
	if len(providers) == 0 {
		slog.Warn("no assistant providers configured, answers will use the local fallback")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				slog.ErrorContext(c.Request().Context(), "request", append(attrs, "err", v.Error)...)
				return nil
			}
			slog.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}))

	httpadp.Register(e, httpadp.Deps{
		Sessions:        sessions,
		Calculator:      calculator.NewUsecase(banks, m),
		Catalog:         catalogUC,
		Comparison:      comparison.NewUsecase(banks),
		Assistant:       assistant.NewChain(cfg.AssistantTimeout(), m, providers...),
		Redis:           rdb,
		AssistantPerMin: cfg.AssistantRatePerMin,
		MetricsHandler:  m.Handler(),
		ReadyChecks: map[string]httpadp.Check{
			"db": func(ctx context.Context) error {
				sqlDB, err := gdb.DB()
				if err != nil {
					return err
				}
				return sqlDB.PingContext(ctx)
			},
			"redis": func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		},
	})

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.AppPort
		slog.Info("listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return nil
}

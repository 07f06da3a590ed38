package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/autointern/server/internal/adapter/repo"
	"github.com/autointern/server/internal/billing"
	"github.com/autointern/server/internal/db"
	"github.com/autointern/server/internal/gate"
	"github.com/autointern/server/internal/http/handlers"
	"github.com/autointern/server/internal/http/httpapi"
	"github.com/autointern/server/internal/infra"
	"github.com/autointern/server/internal/metrics"
	"github.com/autointern/server/internal/providers/draft"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		bootLogger := infra.NewLogger("development")
		bootLogger.Fatal().Err(err).Msg("load config")
	}

	logger := infra.NewLogger(cfg.AppEnv)

	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		logger.Fatal().Err(err).Msg("apply migrations")
	}

	ctx := context.Background()
	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect database")
	}
	defer pool.Close()

	sqlRunner := infra.NewSQLRunner(pool, logger)
	collector := metrics.NewCollector()

	subs := repo.NewSubscriptionRepository(sqlRunner)
	accessGate := gate.New(subs, cfg.GateRedirectTarget, logger)

	drafter := buildDrafter(cfg, logger, collector)

	billingClient := billing.NewClient(billing.Config{
		SecretKey:      cfg.StripeSecretKey,
		WebhookSecret:  cfg.StripeWebhookSecret,
		MonthlyPriceID: cfg.StripePriceMonthly,
		AnnualPriceID:  cfg.StripePriceAnnual,
		SuccessURL:     cfg.CheckoutSuccessURL,
		CancelURL:      cfg.CheckoutCancelURL,
	})

	app := &handlers.App{
		SQL:       sqlRunner,
		Logger:    logger,
		Drafter:   drafter,
		Gate:      accessGate,
		Billing:   billingClient,
		Metrics:   collector,
		JWTSecret: cfg.JWTSecret,
	}

	server := infra.NewHTTPServer(cfg, httpapi.NewRouter(app, cfg))

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
}

// buildDrafter returns the smart-email strategy chain. Without an API
// key the service still serves drafts, just deterministic ones.
func buildDrafter(cfg *infra.Config, logger infra.Logger, collector *metrics.Collector) draft.Drafter {
	if cfg.OpenAIAPIKey == "" {
		logger.Warn().Msg("OPENAI_API_KEY not set; smart emails use the template drafter")
		return draft.NewTemplateDrafter()
	}

	drafter, err := draft.NewOpenAIDrafter(draft.OpenAIOptions{
		APIKey:       cfg.OpenAIAPIKey,
		Model:        cfg.OpenAIModel,
		BaseURL:      cfg.OpenAIBaseURL,
		Organization: cfg.OpenAIOrg,
		Fallback:     draft.NewTemplateDrafter(),
		OnFallback: func(reason string, cause error) {
			collector.RecordFallback(reason)
			logger.Warn().Err(cause).Str("reason", reason).Msg("openai drafter fell back to template")
		},
	})
	if err != nil {
		logger.Error().Err(err).Msg("openai drafter unavailable; using template drafter")
		return draft.NewTemplateDrafter()
	}
	return drafter
}

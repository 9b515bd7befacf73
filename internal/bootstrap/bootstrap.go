package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mzhokh/photocat/internal/config"
	"github.com/mzhokh/photocat/internal/core/domain"
	"github.com/mzhokh/photocat/internal/core/ports"
	"github.com/mzhokh/photocat/internal/core/usecase"
	"github.com/mzhokh/photocat/internal/infrastructure/catalog/immich"
	"github.com/mzhokh/photocat/internal/infrastructure/resilience"
	"github.com/mzhokh/photocat/internal/observability/logging"
	"github.com/mzhokh/photocat/internal/observability/metrics"
)

type App struct {
	Config config.Config
	Log    *slog.Logger
	Rules  *config.Rules

	StackUC ports.StackOrganizer
	AlbumUC ports.AlbumBuilder

	closeFn func()
}

func New(cfg config.Config) (*App, error) {
	if cfg.CatalogAPIKey == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "bootstrap", errors.New("CATALOG_API_KEY is not set"))
	}

	log := logging.NewJSONLogger("photocat", cfg.LogLevel).With("run_id", uuid.NewString())
	slog.SetDefault(log)

	rules, err := config.LoadRules(cfg.RulesPath)
	if err != nil {
		return nil, domain.WrapError(domain.ErrInvalidInput, "bootstrap", err)
	}

	catalogMetrics := metrics.NewCatalogMetrics("photocat")
	executor := resilience.NewExecutor(resilienceConfig(cfg))
	catalog := immich.New(cfg.CatalogURL, cfg.CatalogAPIKey, executor, catalogMetrics)

	aggregator := usecase.NewAggregator(catalog, cfg.PageSize, log)
	stackUC := usecase.NewStackUseCase(catalog, catalog, catalog, cfg.PageSize, log)
	albumUC := usecase.NewAlbumUseCase(aggregator, catalog, log)

	app := &App{
		Config:  cfg,
		Log:     log,
		Rules:   rules,
		StackUC: stackUC,
		AlbumUC: albumUC,
	}
	app.closeFn = startMetricsListener(cfg.MetricsAddr, catalogMetrics, log)
	return app, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}

// resilienceConfig maps the flat env knobs onto the executor config; unset
// or invalid values fall back to executor defaults.
func resilienceConfig(cfg config.Config) resilience.Config {
	minRequests := cfg.BreakerMinRequests
	if minRequests < 0 {
		minRequests = 0
	}
	return resilience.Config{
		RetryMaxAttempts:    cfg.RetryMaxAttempts,
		RetryInitialBackoff: time.Duration(cfg.RetryInitialBackoffMS) * time.Millisecond,
		RetryMaxBackoff:     time.Duration(cfg.RetryMaxBackoffMS) * time.Millisecond,

		BreakerEnabled:     cfg.BreakerEnabled,
		BreakerMinRequests: uint32(minRequests),
		BreakerOpenTimeout: time.Duration(cfg.BreakerOpenTimeoutS) * time.Second,
	}
}

// startMetricsListener serves /metrics for long-running invocations when
// METRICS_ADDR is set. A CLI run that outlives the scrape interval is the
// whole point; short runs simply never get scraped.
func startMetricsListener(addr string, m *metrics.CatalogMetrics, log *slog.Logger) func() {
	if addr == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn("metrics_listener_failed", "addr", addr, "error", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	}
}

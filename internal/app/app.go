package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"recruitlens/internal/config"
	apierrors "recruitlens/internal/errors"
	"recruitlens/internal/infrastructure"
	"recruitlens/internal/ingest"
	customMiddleware "recruitlens/internal/middleware"
	"recruitlens/internal/services"
	handlers "recruitlens/internal/transport/http"
)

const (
	VERSION = "1.0.0"
	AppName = "RecruitLens - Recruitment Analytics"
)

// Application represents the main application container
type Application struct {
	Config        *config.Config
	Router        *chi.Mux
	Server        *http.Server
	Logger        *slog.Logger
	OTelProviders *infrastructure.OTelProviders

	DatasetService   *services.DatasetService
	DashboardService *services.DashboardService
	HealthService    *services.HealthService
}

// NewApplication creates a new application instance with dependency injection
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Application starting",
		slog.String("name", AppName),
		slog.String("version", VERSION))

	otelProviders, err := infrastructure.InitializeOTel(infrastructure.DefaultOTelConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	app := &Application{
		Config:        cfg,
		Logger:        logger,
		OTelProviders: otelProviders,
	}

	if err := app.initializeServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	app.setupRouter()
	app.createServer()

	return app, nil
}

// initializeServices wires the dataset, dashboard and health services.
func (a *Application) initializeServices() error {
	datasetMetrics, err := infrastructure.CreateDatasetMetrics(a.OTelProviders.Meter)
	if err != nil {
		a.Logger.Warn("dataset metrics unavailable", slog.String("error", err.Error()))
	}

	var fetcher services.SheetFetcher
	if a.Config.Dataset.SheetID != "" {
		client, err := ingest.NewSheetsClient(context.Background(), a.Config.Dataset, a.Logger)
		if err != nil {
			return fmt.Errorf("failed to create sheets client: %w", err)
		}
		fetcher = client
	}

	a.DatasetService = services.NewDatasetService(a.Config.Dataset, fetcher, a.Logger, a.OTelProviders.Tracer, datasetMetrics)
	a.DashboardService = services.NewDashboardService(a.DatasetService, a.Logger)
	a.HealthService = services.NewHealthService(a.DatasetService)

	return nil
}

// setupRouter configures the HTTP router with all routes
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(customMiddleware.RequestID)
	r.Use(customMiddleware.StructuredLogger(a.Logger))
	r.Use(customMiddleware.Recoverer(a.Logger))
	r.Use(customMiddleware.CORS(a.Config.Security.AllowedOrigins))

	if a.Config.Security.RateLimit.Enabled {
		r.Use(customMiddleware.NewRateLimiter(
			a.Config.Security.RateLimit.RPS,
			a.Config.Security.RateLimit.Burst,
			a.Logger,
		).Handler)
	}

	r.Route("/api", func(r chi.Router) {
		errorHandler := apierrors.NewErrorHandler(a.Logger)

		healthHandler := handlers.NewHealthHandler(a.HealthService, a.Logger)
		r.Get("/health", healthHandler.HealthCheck)

		dashboardHandler := handlers.NewDashboardHandler(a.DashboardService, a.DatasetService, a.Logger, errorHandler)
		r.Mount("/", dashboardHandler.Routes())
	})

	// Prometheus scrape endpoint stays outside the middleware stack.
	if a.OTelProviders.PrometheusHTTP != nil {
		r.Handle("/metrics", a.OTelProviders.PrometheusHTTP)
	}

	a.Router = r
}

// createServer creates the HTTP server
func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:      a.Router,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}
}

// Run starts the server and blocks until an interrupt or a fatal server
// error. The initial dataset load is attempted before serving; a failure
// is not fatal, the server comes up degraded until a reload succeeds.
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.DatasetService.Load(ctx); err != nil {
		a.Logger.Warn("initial dataset load failed, serving degraded",
			slog.String("error", err.Error()))
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Logger.Info("server listening",
			slog.String("address", fmt.Sprintf("http://localhost:%d", a.Config.Server.Port)))
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		return a.Stop()
	})

	return g.Wait()
}

// Stop gracefully shuts down the server and flushes telemetry.
func (a *Application) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()

	a.Logger.Info("shutting down")

	if err := a.Server.Shutdown(ctx); err != nil {
		a.Logger.Error("server shutdown failed", slog.String("error", err.Error()))
		return err
	}

	if a.OTelProviders != nil {
		if err := a.OTelProviders.Shutdown(ctx); err != nil {
			a.Logger.Warn("telemetry shutdown failed", slog.String("error", err.Error()))
		}
	}

	// Give the log file a moment to flush queued writes.
	time.Sleep(100 * time.Millisecond)
	return infrastructure.CloseLogFile()
}

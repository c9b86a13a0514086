package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"datavista/internal/config"
	"datavista/internal/middleware"
	"datavista/internal/observability"
	"datavista/internal/server"
	"datavista/internal/services"
	"datavista/internal/ui/templates"
)

const (
	renderTimeout = 10 * time.Second
	loadTimeout   = 30 * time.Second
	cacheMaxAge   = "public, max-age=300"
)

func handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), renderTimeout)
	defer cancel()

	w.Header().Set("Cache-Control", cacheMaxAge)
	if err := templates.Dashboard().Render(ctx, w); err != nil {
		http.Error(w, "render error", http.StatusInternalServerError)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.Logger)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"version", "1.0.0",
		"config", cfg,
	)

	metrics := observability.NewMetrics()
	store := services.NewDatasetStore(cfg.Dataset.RowCap, metrics)
	dashboard := services.NewDashboard(store, logger, metrics)

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	// Load errors degrade to an empty dataset; the dashboard still serves.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := dashboard.Load(gctx, cfg.Dataset.CSVFile); err != nil {
			logger.Warn("sales dataset unavailable", "error", err)
		}
		return nil
	})
	g.Go(func() error {
		return dashboard.LoadBaseline(cfg.Dataset.BaselineFile)
	})
	if err := g.Wait(); err != nil {
		logger.Error("failed to load baseline product sales", "error", err)
		os.Exit(1)
	}

	templateHandlers := &server.TemplateHandlers{
		Dashboard: handleDashboard,
	}

	srv := server.NewServer(dashboard, logger, metrics, templateHandlers)

	rateLimiter := middleware.NewRateLimiter(cfg.Security)

	middlewareChain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Tracing(),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.Security),
		middleware.TrustedProxy(cfg.Security),
		middleware.RateLimit(rateLimiter, logger),
	)

	handler := middlewareChain(srv)

	httpServer := &http.Server{
		Addr:         cfg.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	gracefulServer := server.NewGracefulServer(httpServer, logger, cfg)

	gracefulServer.RegisterShutdownHook(func(ctx context.Context) error {
		logger.Info("shutting down dashboard service")
		store.Invalidate(cfg.Dataset.CSVFile)
		return nil
	})

	logger.Info("starting graceful server")
	if err := gracefulServer.ListenAndServe(); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}

	logger.Info("application stopped gracefully")
}

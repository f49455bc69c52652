package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	urfave "github.com/urfave/cli/v3"

	"creditwise/config"
	httpLayer "creditwise/http"
	"creditwise/observability"
	"creditwise/repository"
	"creditwise/service"
)

const portFlagName = "port"

func newServeCmd() *urfave.Command {
	return &urfave.Command{
		Name:    "serve",
		Aliases: []string{"server"},
		Usage:   "Start the HTTP API",
		Flags: []urfave.Flag{
			&urfave.StringFlag{
				Name:  portFlagName,
				Usage: "Port on which the server will listen (overrides config)",
			},
		},
		Action: cmdServe,
	}
}

func cmdServe(ctx context.Context, cmd *urfave.Command) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if p := cmd.String(portFlagName); p != "" {
		cfg.Port = p
	}

	cache, closeCache, err := newCache(ctx, cfg.Cache, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	metrics := observability.NewMetrics()
	insight := service.NewInsightService(service.InsightConfig{
		APIKey:    cfg.Insight.APIKey,
		Model:     cfg.Insight.Model,
		MaxTokens: cfg.Insight.MaxTokens,
		Timeout:   cfg.Insight.Timeout,
	}, logger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	defer rateLimiter.Stop()

	handler := httpLayer.NewRouter(httpLayer.Dependencies{
		Scoring:    service.NewScoringService(cache, insight, metrics, logger),
		Simulation: service.NewSimulationService(metrics, logger),
		Limiter:    rateLimiter,
		Metrics:    metrics,
		Logger:     logger,
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server started",
			"addr", server.Addr,
			"env", cfg.Env,
			"cache", cfg.Cache.Backend,
			"llm_insight", insight.Enabled(),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("starting server: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	logger.Info("server exited")
	return nil
}

// newCache builds the configured cache backend. An unreachable Redis is
// logged but not fatal; lookups then simply miss.
func newCache(
	ctx context.Context,
	cfg config.CacheConfig,
	logger *slog.Logger,
) (repository.CacheRepository, func(), error) {
	switch cfg.Backend {
	case config.CacheNone:
		return nil, func() {}, nil
	case config.CacheMemory:
		cache := repository.NewMemoryCache(cfg.TTL)
		return cache, cache.Stop, nil
	case config.CacheRedis:
		cache := repository.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.TTL)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := cache.Ping(pingCtx); err != nil {
			logger.Warn("redis cache unreachable", "addr", cfg.RedisAddr, "error", err)
		}
		return cache, func() {
			if err := cache.Close(); err != nil {
				logger.Warn("error closing redis cache", "error", err)
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

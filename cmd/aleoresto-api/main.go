// README: Entry point; loads config, wires Maps adapters, cache, history and the HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"aleoresto/internal/cache"
	"aleoresto/internal/config"
	httptransport "aleoresto/internal/http"
	"aleoresto/internal/infra"
	"aleoresto/internal/maps"
	"aleoresto/internal/modules/history"
	"aleoresto/internal/modules/restaurant"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	logger := infra.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := infra.InitTracing(ctx, cfg.Telemetry)
	if err != nil {
		logger.WithError(err).Warn("tracing disabled")
	}

	client, err := maps.NewClient(cfg.Maps.APIKey, cfg.Maps.BaseURL, &http.Client{Timeout: 2 * cfg.Maps.UpstreamTimeout})
	if err != nil {
		logger.WithError(err).Fatal("maps client")
	}

	detailCache := newDetailCache(ctx, cfg, logger)
	places := maps.NewPlacesService(client, maps.PlacesConfig{
		APIKey:        cfg.Maps.APIKey,
		PhotoMaxWidth: cfg.Maps.PhotoMaxWidth,
		Language:      cfg.Maps.Language,
		Cache:         detailCache,
		CacheTTL:      cfg.Cache.TTL,
		Logger:        logger,
	})
	routes := maps.NewRouteService(client, cfg.Maps.EmbedKey, cfg.Maps.Language)

	opts := []restaurant.Option{
		restaurant.WithLogger(logger),
		restaurant.WithCallTimeout(cfg.Maps.UpstreamTimeout),
	}
	deps := httptransport.ServerDeps{
		Logger:         logger,
		CORSOrigins:    cfg.HTTP.CORSOrigins,
		RateLimitRPS:   cfg.HTTP.RateLimitRPS,
		RateLimitBurst: cfg.HTTP.RateLimitBurst,
		MetricsEnabled: cfg.Telemetry.MetricsEnabled,
	}

	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			logger.WithError(err).Fatal("postgres")
		}
		defer dbPool.Close()

		store := history.NewStore(dbPool)
		if err := store.Migrate(ctx); err != nil {
			logger.WithError(err).Fatal("migrate picks table")
		}
		historySvc := history.NewService(store)
		opts = append(opts, restaurant.WithHistory(historySvc))
		deps.History = historySvc
	}

	deps.Random = restaurant.NewService(places, places, routes, opts...)
	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           httptransport.NewServer(deps).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("http shutdown")
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.WithError(err).Warn("tracing shutdown")
		}
	}()

	logger.WithField("addr", cfg.HTTP.Addr).Info("aleoresto api listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Fatal("http server")
	}
}

// newDetailCache picks the configured backend. An unreachable Redis falls
// back to the in-process cache.
func newDetailCache(ctx context.Context, cfg config.Config, logger logrus.FieldLogger) cache.Cache {
	switch cfg.Cache.Backend {
	case cache.BackendNone:
		return nil
	case cache.BackendRedis:
		client, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err == nil {
			return cache.NewRedis(client)
		}
		logger.WithError(err).Warn("redis unavailable, using in-process detail cache")
	case cache.BackendMemory:
	default:
		logger.WithError(cache.ErrUnknownBackend).WithField("backend", cfg.Cache.Backend).Warn("using in-process detail cache")
	}
	return cache.NewMemory(cfg.Cache.TTL, 2*cfg.Cache.TTL)
}

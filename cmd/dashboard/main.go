package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"admin/internal/affiliate"
	"admin/internal/cache"
	"admin/internal/http/handlers"
	httpapi "admin/internal/http/httpapi"
	"admin/internal/infra"
	"admin/internal/infra/geoip"
	"admin/internal/view"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	readCache, closeCache, err := cache.Open(ctx, cfg.RedisURL, cfg.CacheTTL, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect redis")
	}
	defer closeCache()

	geo, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.GeoIPDBPath).Msg("geoip disabled")
		geo = nil
	}
	defer geo.Close()

	client, err := affiliate.NewClient(affiliate.Options{
		BaseURL:        cfg.APIBaseURL,
		Token:          cfg.APIToken,
		Logger:         &logger,
		Cache:          readCache,
		RequestTimeout: cfg.APITimeout,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build affiliate client")
	}

	views, err := view.New(&logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse templates")
	}

	app := handlers.NewApp(client, views, &logger, cfg.PageSize)
	router := httpapi.NewRouter(app, &logger, httpapi.Options{
		DefaultLocale:   cfg.DefaultLocale,
		CountryLookup:   geo.Lookup(),
		RateLimitPerMin: cfg.RateLimitPerMin,
		TrustProxy:      cfg.TrustProxy,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("api", cfg.APIBaseURL).Msgf("dashboard listening on %s", server.Addr())
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

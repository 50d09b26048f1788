package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pschiavoadm-gif/cluster-a-xml-pardo/internal/api"
	"github.com/pschiavoadm-gif/cluster-a-xml-pardo/internal/cache"
	"github.com/pschiavoadm-gif/cluster-a-xml-pardo/internal/catalog"
	"github.com/pschiavoadm-gif/cluster-a-xml-pardo/internal/config"
	"github.com/pschiavoadm-gif/cluster-a-xml-pardo/internal/imageload"
	"github.com/pschiavoadm-gif/cluster-a-xml-pardo/internal/middleware"
	"github.com/pschiavoadm-gif/cluster-a-xml-pardo/internal/observability"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting promo image server")

	// Fetch cache is optional; a missing redis only costs repeat fetches.
	redisClient, err := cache.New(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, fetch cache disabled")
		redisClient = nil
	}
	defer redisClient.Close()

	observability.Start(cfg.MetricsPort)

	fetcher := catalog.NewFetcher(cfg.CatalogHost, redisClient, cfg.CacheTTL)
	normalizer := catalog.NewNormalizer(cfg.ResizeHost, cfg.PreferredSeller)
	loader := imageload.New()

	h := api.NewHandler(fetcher, normalizer, loader, cfg.OverlayURL, cfg.ExportPrefix, cfg.CatalogHost)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logging())
	api.RegisterRoutes(r, h)

	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := r.Run(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupLogger(env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

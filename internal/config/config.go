package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime parameters, loaded from the environment.
type Config struct {
	Port            string
	Env             string
	CatalogHost     string // storefront base URL, also the search endpoint host
	ResizeHost      string // image resize proxy base URL
	OverlayURL      string // default overlay frame; empty renders without one
	ExportPrefix    string // prefix for export filenames
	PreferredSeller string // sellerId whose offer wins during normalization
	RedisURL        string // empty disables the fetch cache
	CacheTTL        time.Duration
	MetricsPort     string
}

// Load reads .env (best-effort) and builds the config with defaults.
func Load() *Config {
	_ = godotenv.Load()

	ttl := 10 * time.Minute
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			ttl = d
		}
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		CatalogHost:     getEnv("CATALOG_HOST", "https://www.pardo.com.ar"),
		ResizeHost:      getEnv("RESIZE_HOST", "https://images.weserv.nl"),
		OverlayURL:      os.Getenv("OVERLAY_URL"),
		ExportPrefix:    getEnv("EXPORT_PREFIX", "promo"),
		PreferredSeller: getEnv("PREFERRED_SELLER", "1"),
		RedisURL:        os.Getenv("REDIS_URL"),
		CacheTTL:        ttl,
		MetricsPort:     getEnv("METRICS_PORT", "9090"),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

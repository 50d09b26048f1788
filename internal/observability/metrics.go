package observability

import (
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	FetchAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_fetch_attempts_total",
			Help: "Retrieval attempts per strategy",
		},
		[]string{"strategy"},
	)
	FetchFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_fetch_failures_total",
			Help: "Failed retrieval attempts per strategy",
		},
		[]string{"strategy"},
	)
	FetchCacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_fetch_cache_hits_total",
			Help: "Cluster fetches served from the redis cache",
		},
	)
	RendersTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "canvas_renders_total",
			Help: "Promo canvases composited",
		},
	)
	ExportsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "canvas_exports_total",
			Help: "Promo canvases exported as downloads",
		},
	)
)

// Start registers the collectors and serves /metrics on a side port.
// A port that cannot be bound is logged and skipped; metrics are not
// worth taking the service down for.
func Start(port string) {
	prometheus.MustRegister(FetchAttempts, FetchFailures, FetchCacheHits, RendersTotal, ExportsTotal)

	ln, err := net.Listen("tcp", ":"+port)
	if err != nil {
		log.Error().Err(err).Str("port", port).Msg("metrics listener failed")
		return
	}

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.Serve(ln, nil); err != nil {
			log.Error().Err(err).Msg("metrics server stopped")
		}
	}()
}

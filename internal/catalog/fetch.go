package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pschiavoadm-gif/cluster-a-xml-pardo/internal/cache"
	"github.com/pschiavoadm-gif/cluster-a-xml-pardo/internal/observability"
)

// ErrUnreachable reports that every retrieval strategy was exhausted
// without producing a usable batch. Per-strategy failures are only traced.
var ErrUnreachable = errors.New("catalog unreachable: all retrieval strategies failed")

const searchPath = "/api/catalog_system/pub/products/search"

// Fetcher retrieves raw catalog records for a cluster id through an
// ordered chain of retrieval strategies.
type Fetcher struct {
	host       string
	client     *http.Client
	strategies []Strategy
	cache      *cache.RedisClient // nil disables caching
	cacheTTL   time.Duration
}

func NewFetcher(host string, c *cache.RedisClient, ttl time.Duration) *Fetcher {
	return &Fetcher{
		host:       host,
		client:     &http.Client{Timeout: 20 * time.Second},
		strategies: defaultStrategies(),
		cache:      c,
		cacheTTL:   ttl,
	}
}

// SearchURL builds the upstream search request for a cluster id, bounded
// to the first page of up to 50 records.
func (f *Fetcher) SearchURL(clusterID string) string {
	return fmt.Sprintf("%s%s?fq=productClusterIds:%s&_from=0&_to=49", f.host, searchPath, clusterID)
}

// FetchCluster retrieves the raw records for a cluster id. Strategies are
// tried strictly in order; the first one that returns an OK status and a
// non-empty array wins and the rest are skipped. Individual failures are
// logged and swallowed. No strategy is retried.
func (f *Fetcher) FetchCluster(ctx context.Context, clusterID string) ([]RawProduct, error) {
	if batch, ok := f.cached(ctx, clusterID); ok {
		return batch, nil
	}

	target := f.SearchURL(clusterID)
	for _, s := range f.strategies {
		observability.FetchAttempts.WithLabelValues(s.Name).Inc()
		batch, err := f.try(ctx, s, target)
		if err != nil {
			observability.FetchFailures.WithLabelValues(s.Name).Inc()
			log.Debug().Err(err).Str("strategy", s.Name).Str("cluster", clusterID).Msg("retrieval strategy failed")
			continue
		}
		log.Info().Str("strategy", s.Name).Str("cluster", clusterID).Int("records", len(batch)).Msg("catalog fetch ok")
		f.store(ctx, clusterID, batch)
		return batch, nil
	}
	return nil, ErrUnreachable
}

func (f *Fetcher) try(ctx context.Context, s Strategy, target string) ([]RawProduct, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Build(target), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	batch, err := s.Unwrap(body)
	if err != nil {
		return nil, err
	}
	if len(batch) == 0 {
		return nil, errors.New("empty batch")
	}
	return batch, nil
}

func (f *Fetcher) cached(ctx context.Context, clusterID string) ([]RawProduct, bool) {
	v, ok := f.cache.Get(ctx, cacheKey(clusterID))
	if !ok {
		return nil, false
	}
	var batch []RawProduct
	if err := json.Unmarshal([]byte(v), &batch); err != nil || len(batch) == 0 {
		return nil, false
	}
	observability.FetchCacheHits.Inc()
	return batch, true
}

func (f *Fetcher) store(ctx context.Context, clusterID string, batch []RawProduct) {
	b, err := json.Marshal(batch)
	if err != nil {
		return
	}
	f.cache.Set(ctx, cacheKey(clusterID), string(b), f.cacheTTL)
}

func cacheKey(clusterID string) string {
	return "catalog:cluster:" + clusterID
}

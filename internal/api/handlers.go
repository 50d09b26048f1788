package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/pschiavoadm-gif/cluster-a-xml-pardo/internal/catalog"
	"github.com/pschiavoadm-gif/cluster-a-xml-pardo/internal/observability"
	"github.com/pschiavoadm-gif/cluster-a-xml-pardo/internal/render"
)

// Fetcher is the slice of the catalog fetcher the handlers depend on.
type Fetcher interface {
	FetchCluster(ctx context.Context, clusterID string) ([]catalog.RawProduct, error)
}

// Handler wires the pipeline behind the HTTP surface. It owns the current
// product batch, which every successful fetch replaces wholesale.
type Handler struct {
	fetcher        Fetcher
	normalizer     *catalog.Normalizer
	loader         render.ImageLoader
	batch          *catalog.Batch
	defaultOverlay string
	exportPrefix   string
	storeHost      string
}

// NewHandler builds the handler set. The batch starts with the built-in
// demo record so the canvas works before the first fetch.
func NewHandler(f Fetcher, n *catalog.Normalizer, l render.ImageLoader, defaultOverlay, exportPrefix, storeHost string) *Handler {
	h := &Handler{
		fetcher:        f,
		normalizer:     n,
		loader:         l,
		batch:          &catalog.Batch{},
		defaultOverlay: defaultOverlay,
		exportPrefix:   exportPrefix,
		storeHost:      storeHost,
	}
	h.batch.Replace([]catalog.Product{catalog.DemoProduct()})
	return h
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// listProducts extracts a cluster id from the query, fetches and
// normalizes the batch, and installs it as the current selection.
func (h *Handler) listProducts(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter"})
		return
	}

	clusterID := catalog.ExtractClusterID(query)
	raw, err := h.fetcher.FetchCluster(c.Request.Context(), clusterID)
	if err != nil {
		h.batch.Clear()
		log.Warn().Err(err).Str("cluster", clusterID).Msg("cluster fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "no pudimos conectar con el catálogo, probá de nuevo"})
		return
	}

	products := h.normalizer.Normalize(raw)
	h.batch.Replace(products)
	c.JSON(http.StatusOK, gin.H{"cluster": clusterID, "count": len(products), "products": products})
}

// demoProducts installs the built-in demo record as the current batch.
func (h *Handler) demoProducts(c *gin.Context) {
	products := []catalog.Product{catalog.DemoProduct()}
	h.batch.Replace(products)
	c.JSON(http.StatusOK, gin.H{"count": len(products), "products": products})
}

// renderConfig reads the per-render flags from the query string. The
// overlay defaults to the configured frame; "none" disables it.
func (h *Handler) renderConfig(c *gin.Context) render.Config {
	cfg := render.Config{
		ShowPrice:      c.DefaultQuery("price", "1") == "1",
		ShowAutoBadges: c.DefaultQuery("badges", "1") == "1",
		ShowBankBadge:  c.DefaultQuery("bank", "0") == "1",
		OverlayRef:     c.DefaultQuery("overlay", h.defaultOverlay),
	}
	if cfg.OverlayRef == "none" {
		cfg.OverlayRef = ""
	}
	return cfg
}

func (h *Handler) composeJPEG(c *gin.Context, p catalog.Product) ([]byte, bool) {
	cfg := h.renderConfig(c)
	assets := render.ResolveAssets(c.Request.Context(), h.loader, p, cfg)
	img := render.Compose(p, cfg, assets)
	observability.RendersTotal.Inc()

	var buf bytes.Buffer
	if err := render.EncodeJPEG(&buf, img); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return buf.Bytes(), true
}

// renderProduct returns a JPEG preview of the composited canvas.
func (h *Handler) renderProduct(c *gin.Context) {
	p, ok := h.batch.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown product"})
		return
	}
	b, ok := h.composeJPEG(c, p)
	if !ok {
		return
	}
	c.Data(http.StatusOK, "image/jpeg", b)
}

// exportProduct returns the same canvas as a download named by SKU.
func (h *Handler) exportProduct(c *gin.Context) {
	p, ok := h.batch.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown product"})
		return
	}
	b, ok := h.composeJPEG(c, p)
	if !ok {
		return
	}
	observability.ExportsTotal.Inc()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", render.Filename(h.exportPrefix, p.SKU)))
	c.Data(http.StatusOK, "image/jpeg", b)
}

// productQR returns a PNG QR code linking to the product page.
func (h *Handler) productQR(c *gin.Context) {
	p, ok := h.batch.Get(c.Query("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown product"})
		return
	}
	size := 400
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 {
		size = v
	}
	b, err := render.ProductQR(fmt.Sprintf("%s/%s/p", h.storeHost, p.ID), size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

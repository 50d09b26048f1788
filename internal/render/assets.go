package render

import (
	"context"
	"image"

	"github.com/rs/zerolog/log"

	"github.com/pschiavoadm-gif/cluster-a-xml-pardo/internal/catalog"
)

// ImageLoader resolves an image reference into a decoded bitmap.
type ImageLoader interface {
	Load(ctx context.Context, ref string) (image.Image, error)
}

// Assets holds every bitmap one composition needs, resolved up front so
// the drawing phase never waits on the network. A nil Product draws the
// placeholder; a nil Overlay simply omits the frame.
type Assets struct {
	Product image.Image
	Overlay image.Image
}

// ResolveAssets loads the product photo and the overlay frame. Load
// failures are logged and tolerated; composition always proceeds.
func ResolveAssets(ctx context.Context, loader ImageLoader, p catalog.Product, cfg Config) Assets {
	var a Assets
	if p.ImageURL != "" {
		img, err := loader.Load(ctx, p.ImageURL)
		if err != nil {
			log.Warn().Err(err).Str("sku", p.SKU).Msg("product image load failed, using placeholder")
		} else {
			a.Product = img
		}
	}
	if cfg.OverlayRef != "" {
		img, err := loader.Load(ctx, cfg.OverlayRef)
		if err != nil {
			log.Warn().Err(err).Msg("overlay load failed, rendering without frame")
		} else {
			a.Overlay = img
		}
	}
	return a
}

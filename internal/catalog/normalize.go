package catalog

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
)

// freeShippingThreshold approximates the storefront's shipping promo. The
// search response carries no shipping data at this depth, so anything
// above the threshold is flagged.
const freeShippingThreshold = 100000

// Normalizer maps raw search records into renderable products.
type Normalizer struct {
	resizeHost      string
	preferredSeller string
}

func NewNormalizer(resizeHost, preferredSeller string) *Normalizer {
	return &Normalizer{resizeHost: resizeHost, preferredSeller: preferredSeller}
}

// Normalize maps a fetched batch into products. Records that fail to
// normalize are logged and dropped so one malformed entry cannot sink the
// batch; an empty result is a valid (if degenerate) outcome.
func (n *Normalizer) Normalize(batch []RawProduct) []Product {
	out := make([]Product, 0, len(batch))
	for _, raw := range batch {
		p, err := n.normalizeOne(raw)
		if err != nil {
			log.Warn().Err(err).Str("product", raw.ProductID).Msg("dropping malformed record")
			continue
		}
		out = append(out, p)
	}
	return out
}

func (n *Normalizer) normalizeOne(raw RawProduct) (Product, error) {
	if raw.ProductID == "" {
		return Product{}, errors.New("missing productId")
	}
	if len(raw.Items) == 0 {
		return Product{}, fmt.Errorf("product %s has no items", raw.ProductID)
	}
	item := raw.Items[0]
	if item.ItemID == "" {
		return Product{}, fmt.Errorf("product %s has no itemId", raw.ProductID)
	}
	if len(item.Sellers) == 0 {
		return Product{}, fmt.Errorf("product %s has no sellers", raw.ProductID)
	}

	seller := item.Sellers[0]
	for _, s := range item.Sellers {
		if s.SellerID == n.preferredSeller {
			seller = s
			break
		}
	}

	offer := seller.CommertialOffer
	price := int(math.Round(offer.Price))

	return Product{
		ID:           raw.ProductID,
		Name:         raw.ProductName,
		Price:        price,
		ListPrice:    int(math.Round(offer.ListPrice)),
		ImageURL:     n.rewriteImageURL(firstImage(item)),
		Installments: bestInstallments(offer.Installments),
		FreeShipping: price > freeShippingThreshold,
		SKU:          item.ItemID,
		BankPromo:    "", // not derivable from the search response
		Pickup:       true,
	}, nil
}

// bestInstallments prefers the largest zero-interest plan; with no
// interest-free option it falls back to the largest plan overall.
func bestInstallments(plans []RawInstallment) int {
	best, bestFree := 0, 0
	for _, pl := range plans {
		if pl.NumberOfInstallments > best {
			best = pl.NumberOfInstallments
		}
		if pl.InterestRate == 0 && pl.NumberOfInstallments > bestFree {
			bestFree = pl.NumberOfInstallments
		}
	}
	if bestFree > 0 {
		return bestFree
	}
	return best
}

func firstImage(item RawItem) string {
	if len(item.Images) == 0 {
		return ""
	}
	return item.Images[0].ImageURL
}

// rewriteImageURL strips any query string and routes the image through the
// resize proxy so the canvas always receives a 1000x1000 JPEG.
func (n *Normalizer) rewriteImageURL(raw string) string {
	if raw == "" {
		return ""
	}
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		raw = raw[:i]
	}
	return fmt.Sprintf("%s/?url=%s&output=jpg&w=1000&h=1000", n.resizeHost, url.QueryEscape(raw))
}

package render

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/pschiavoadm-gif/cluster-a-xml-pardo/internal/catalog"
	"github.com/pschiavoadm-gif/cluster-a-xml-pardo/internal/currency"
)

// Brand palette.
var (
	accentColor     = color.NRGBA{R: 0xd6, G: 0x00, B: 0x3c, A: 0xff} // price fill
	badgeColor      = color.NRGBA{R: 0x00, G: 0x3c, B: 0x8f, A: 0xff} // auto badges
	bankColor       = color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	placeholderGray = color.NRGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff}
	placeholderInk  = color.NRGBA{R: 0x8c, G: 0x8c, B: 0x8c, A: 0xff}
)

// composeMu serializes renders. The shared font faces are not safe for
// concurrent use, and renders are sequential anyway.
var composeMu sync.Mutex

// Compose draws the promo canvas for one product. It only touches
// already-resolved assets, so the same product, config and assets always
// produce the same raster. Layers are applied in a fixed order; config
// flags gate presence, never order.
func Compose(p catalog.Product, cfg Config, assets Assets) *image.NRGBA {
	composeMu.Lock()
	defer composeMu.Unlock()

	ensureFaces()

	dc := gg.NewContext(CanvasSize, CanvasSize)

	// 1. background
	dc.SetColor(color.White)
	dc.Clear()

	// 2. product photo, or the placeholder when none resolved
	drawProduct(dc, assets.Product, cfg.ShowPrice)

	// 3. bank promotion badge, fixed left slot
	if cfg.ShowBankBadge {
		drawBankBadge(dc, p.BankPromo)
	}

	// 4. automatic badges, right-side stack
	if cfg.ShowAutoBadges {
		y := float64(autoBadgeY)
		if p.Installments > 1 {
			drawInstallmentsBadge(dc, p.Installments, y)
			y += instBadgeH
		}
		if p.Pickup {
			drawPickupBadge(dc, y)
		}
	}

	// 5. price block
	if cfg.ShowPrice {
		drawPriceBlock(dc, p)
	}

	// 6. overlay frame, stretched over everything
	if assets.Overlay != nil {
		frame := imaging.Resize(assets.Overlay, CanvasSize, CanvasSize, imaging.Lanczos)
		dc.DrawImage(frame, 0, 0)
	}

	return imaging.Clone(dc.Image())
}

func drawProduct(dc *gg.Context, img image.Image, showPrice bool) {
	if img == nil {
		drawPlaceholder(dc, showPrice)
		return
	}
	b := img.Bounds()
	x, y, w, h := imagePlacement(b.Dx(), b.Dy(), showPrice)
	if w <= 0 || h <= 0 {
		return
	}
	scaled := imaging.Resize(img, w, h, imaging.Lanczos)
	dc.DrawImage(scaled, x, y)
}

func drawPlaceholder(dc *gg.Context, showPrice bool) {
	x, y, w, h := imagePlacement(600, 600, showPrice)
	dc.SetColor(placeholderGray)
	dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	dc.Fill()
	dc.SetColor(placeholderInk)
	dc.SetFontFace(placeholderFace)
	dc.DrawStringAnchored("Sin imagen", float64(x)+float64(w)/2, float64(y)+float64(h)/2, 0.5, 0.5)
}

func drawBankBadge(dc *gg.Context, promo string) {
	x, y := float64(bankBadgeX), float64(bankBadgeY)
	dc.SetColor(bankColor)
	dc.DrawRoundedRectangle(x, y, bankBadgeW, bankBadgeH, badgeRadius)
	dc.Fill()

	// Fixed template headline; the promo text from the record becomes the
	// sub-line when present.
	sub := "con tarjetas del banco"
	if promo != "" {
		sub = promo
	}
	dc.SetColor(color.White)
	dc.SetFontFace(bankHeadFace)
	dc.DrawStringAnchored("25% OFF", x+bankBadgeW/2, y+bankBadgeH*0.38, 0.5, 0.5)
	dc.SetFontFace(badgeTextFace)
	dc.DrawStringAnchored(sub, x+bankBadgeW/2, y+bankBadgeH*0.76, 0.5, 0.5)
}

func drawInstallmentsBadge(dc *gg.Context, count int, y float64) {
	x := float64(autoBadgeX)
	dc.SetColor(badgeColor)
	dc.DrawRoundedRectangle(x, y, autoBadgeW, instBadgeH, badgeRadius)
	dc.Fill()

	dc.SetColor(color.White)
	dc.SetFontFace(badgeNumFace)
	dc.DrawStringAnchored(fmt.Sprintf("%d", count), x+autoBadgeW/2, y+52, 0.5, 0.5)
	dc.SetFontFace(badgeTextFace)
	dc.DrawStringAnchored("cuotas", x+autoBadgeW/2, y+instBadgeH-48, 0.5, 0.5)
	dc.DrawStringAnchored("sin interés", x+autoBadgeW/2, y+instBadgeH-26, 0.5, 0.5)
}

func drawPickupBadge(dc *gg.Context, y float64) {
	x := float64(autoBadgeX)
	dc.SetColor(badgeColor)
	dc.DrawRoundedRectangle(x, y, autoBadgeW, pickupBadgeH, pickupBadgeH/2)
	dc.Fill()

	dc.SetColor(color.White)
	dc.SetFontFace(badgeTextFace)
	dc.DrawStringAnchored("Retiro en sucursal", x+autoBadgeW/2, y+pickupBadgeH/2, 0.5, 0.5)
}

func drawPriceBlock(dc *gg.Context, p catalog.Product) {
	cx := float64(CanvasSize) / 2
	if p.Installments > 1 {
		per := currency.Format(p.Price / p.Installments)
		line := fmt.Sprintf("Hasta %dx %s cuotas sin interés", p.Installments, per)
		drawOutlined(dc, line, cx, priceBaseY-installLineGap, installFace, 6)
	}
	drawOutlined(dc, currency.Format(p.Price), cx, priceBaseY, priceFace, 9)
}

// drawOutlined draws a white halo behind the text before the accent fill,
// keeping the price legible over any background.
func drawOutlined(dc *gg.Context, s string, x, y float64, face font.Face, stroke float64) {
	dc.SetFontFace(face)
	dc.SetColor(color.White)
	for dx := -stroke; dx <= stroke; dx += stroke {
		for dy := -stroke; dy <= stroke; dy += stroke {
			if dx == 0 && dy == 0 {
				continue
			}
			dc.DrawStringAnchored(s, x+dx, y+dy, 0.5, 0.5)
		}
	}
	dc.SetColor(accentColor)
	dc.DrawStringAnchored(s, x, y, 0.5, 0.5)
}

package render

// All geometry is expressed in canvas units on a fixed 1000x1000 raster.
// The top and bottom bands are reserved for the overlay frame's header and
// footer art; computed content stays inside the safe area between them.
// Every value here is a fixed constant except the product-image scale.
const (
	CanvasSize = 1000

	frameMargin = 130 // top and bottom bands owned by the overlay art
	safeTop     = frameMargin
	safeBottom  = CanvasSize - frameMargin
	safeHeight  = safeBottom - safeTop

	imagePadding  = 60  // horizontal padding around the product photo
	priceBandH    = 180 // vertical band reserved for the price block
	imageTopInset = 20  // photo anchor below the safe-area top
	noPriceShift  = 70  // extra downward shift when the price is hidden

	maxImageW = CanvasSize - 2*imagePadding
	maxImageH = safeHeight - priceBandH

	// Bank badge occupies a reserved left slot; drawing it never moves
	// any other layer.
	bankBadgeX  = 40
	bankBadgeY  = 160
	bankBadgeW  = 230
	bankBadgeH  = 130
	badgeRadius = 18

	// Right-side automatic badges stack top to bottom; each badge
	// advances the cursor by its own height.
	autoBadgeW   = 190
	autoBadgeX   = CanvasSize - 40 - autoBadgeW
	autoBadgeY   = 160
	instBadgeH   = 150
	pickupBadgeH = 56

	priceBaseY     = safeBottom - 45 // main price anchor
	installLineGap = 78             // installment line sits this far above
)

// fitScale returns the uniform scale that fits a w×h image inside the
// available area without distortion, never exceeding either bound.
func fitScale(w, h int) float64 {
	if w <= 0 || h <= 0 {
		return 0
	}
	sw := float64(maxImageW) / float64(w)
	sh := float64(maxImageH) / float64(h)
	if sw < sh {
		return sw
	}
	return sh
}

// imagePlacement computes the top-left corner and scaled size for the
// product photo. Hiding the price frees the band below the photo, so the
// anchor shifts down to recenter the composition.
func imagePlacement(w, h int, showPrice bool) (x, y, sw, sh int) {
	s := fitScale(w, h)
	sw = int(float64(w) * s)
	sh = int(float64(h) * s)
	x = (CanvasSize - sw) / 2
	y = safeTop + imageTopInset
	if !showPrice {
		y += noPriceShift
	}
	return x, y, sw, sh
}

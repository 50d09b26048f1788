package render

import (
	qrcode "github.com/skip2/go-qrcode"
)

// ProductQR returns PNG bytes of a QR code pointing at a product page,
// for print material that links back to the listing.
func ProductQR(url string, size int) ([]byte, error) {
	return qrcode.Encode(url, qrcode.Medium, size)
}

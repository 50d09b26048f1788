package render

import (
	"fmt"
	"image"
	"io"
	"regexp"

	"github.com/disintegration/imaging"
)

const jpegQuality = 90

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// EncodeJPEG writes the canvas as the export artifact: JPEG at quality 90.
func EncodeJPEG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
}

// Filename builds the download name for a product, keeping the SKU part
// filesystem-safe.
func Filename(prefix, sku string) string {
	safe := unsafeChars.ReplaceAllString(sku, "-")
	return fmt.Sprintf("%s_%s.jpg", prefix, safe)
}

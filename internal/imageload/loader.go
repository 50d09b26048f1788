// Package imageload resolves image references (http URLs or data URIs)
// into decoded bitmaps.
package imageload

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

// Loader downloads and decodes images. The zero timeout of the default
// http client is not acceptable here because a stuck image download would
// stall a render.
type Loader struct {
	client *http.Client
}

func New() *Loader {
	return &Loader{client: &http.Client{Timeout: 12 * time.Second}}
}

// Load resolves ref into a decoded image. A ref starting with "data:" is
// decoded inline (the overlay upload path); anything else is fetched over
// HTTP.
func (l *Loader) Load(ctx context.Context, ref string) (image.Image, error) {
	if strings.HasPrefix(ref, "data:") {
		return decodeDataURI(ref)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d fetching image", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

func decodeDataURI(ref string) (image.Image, error) {
	i := strings.IndexByte(ref, ',')
	if i < 0 || !strings.Contains(ref[:i], "base64") {
		return nil, errors.New("unsupported data uri")
	}
	raw, err := base64.StdEncoding.DecodeString(ref[i+1:])
	if err != nil {
		return nil, fmt.Errorf("decode data uri: %w", err)
	}
	return imaging.Decode(bytes.NewReader(raw))
}

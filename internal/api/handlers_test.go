package api

import (
	"context"
	"encoding/json"
	"errors"
	"image"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/pschiavoadm-gif/cluster-a-xml-pardo/internal/catalog"
)

type stubFetcher struct {
	batch []catalog.RawProduct
	err   error
}

func (s stubFetcher) FetchCluster(ctx context.Context, clusterID string) ([]catalog.RawProduct, error) {
	return s.batch, s.err
}

type nullLoader struct{}

func (nullLoader) Load(ctx context.Context, ref string) (image.Image, error) {
	return nil, errors.New("no images in tests")
}

func rawFixture() []catalog.RawProduct {
	return []catalog.RawProduct{{
		ProductID:   "77",
		ProductName: "Heladera",
		Items: []catalog.RawItem{{
			ItemID:  "SKU-77",
			Sellers: []catalog.RawSeller{{SellerID: "1", CommertialOffer: catalog.RawOffer{Price: 150000}}},
		}},
	}}
}

func newTestRouter(f Fetcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(f, catalog.NewNormalizer("https://resize.test", "1"), nullLoader{}, "", "promo", "https://www.pardo.com.ar")
	r := gin.New()
	RegisterRoutes(r, h)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListProducts_replacesBatch(t *testing.T) {
	r := newTestRouter(stubFetcher{batch: rawFixture()})

	w := doRequest(t, r, "/api/products?query=164")
	if w.Code != http.StatusOK {
		t.Fatalf("status got %d, want 200", w.Code)
	}
	var resp struct {
		Cluster  string            `json:"cluster"`
		Count    int               `json:"count"`
		Products []catalog.Product `json:"products"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Cluster != "164" || resp.Count != 1 || resp.Products[0].ID != "77" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestListProducts_fetchFailureClearsBatch(t *testing.T) {
	r := newTestRouter(stubFetcher{err: catalog.ErrUnreachable})

	w := doRequest(t, r, "/api/products?query=164")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status got %d, want 502", w.Code)
	}

	// The demo record installed at startup must be gone too.
	w = doRequest(t, r, "/api/render/demo")
	if w.Code != http.StatusNotFound {
		t.Fatalf("render after failed fetch got %d, want 404", w.Code)
	}
}

func TestRenderProduct_returnsJPEG(t *testing.T) {
	r := newTestRouter(stubFetcher{})

	w := doRequest(t, r, "/api/render/demo")
	if w.Code != http.StatusOK {
		t.Fatalf("status got %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/jpeg" {
		t.Fatalf("content type got %q", ct)
	}
	b := w.Body.Bytes()
	if len(b) < 2 || b[0] != 0xff || b[1] != 0xd8 {
		t.Fatal("body is not a JPEG")
	}
}

func TestExportProduct_setsDownloadName(t *testing.T) {
	r := newTestRouter(stubFetcher{})

	w := doRequest(t, r, "/api/export/demo")
	if w.Code != http.StatusOK {
		t.Fatalf("status got %d, want 200", w.Code)
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "promo_DEMO-0001.jpg") {
		t.Fatalf("Content-Disposition %q missing export filename", cd)
	}
}

func TestProductQR_returnsPNG(t *testing.T) {
	r := newTestRouter(stubFetcher{})

	w := doRequest(t, r, "/api/qr?id=demo&size=128")
	if w.Code != http.StatusOK {
		t.Fatalf("status got %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type got %q", ct)
	}
}

func TestDemoProducts_restoresDemoBatch(t *testing.T) {
	r := newTestRouter(stubFetcher{err: catalog.ErrUnreachable})

	doRequest(t, r, "/api/products?query=164") // clears the batch
	w := doRequest(t, r, "/api/products/demo")
	if w.Code != http.StatusOK {
		t.Fatalf("status got %d, want 200", w.Code)
	}
	w = doRequest(t, r, "/api/render/demo")
	if w.Code != http.StatusOK {
		t.Fatalf("render after demo reload got %d, want 200", w.Code)
	}
}

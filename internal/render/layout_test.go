package render

import "testing"

func TestFitScale_wideImageBoundByWidth(t *testing.T) {
	t.Parallel()

	w, h := 2000, 500
	got := fitScale(w, h)
	want := float64(maxImageW) / float64(w)
	if got != want {
		t.Errorf("fitScale(%d,%d) got %v, want %v", w, h, got, want)
	}
}

func TestFitScale_tallImageBoundByHeight(t *testing.T) {
	t.Parallel()

	w, h := 500, 2000
	got := fitScale(w, h)
	want := float64(maxImageH) / float64(h)
	if got != want {
		t.Errorf("fitScale(%d,%d) got %v, want %v", w, h, got, want)
	}
}

func TestFitScale_neverExceedsBounds(t *testing.T) {
	t.Parallel()

	dims := []struct{ w, h int }{
		{100, 100}, {2000, 500}, {500, 2000}, {881, 561}, {1, 10000},
	}
	for _, d := range dims {
		s := fitScale(d.w, d.h)
		if sw := float64(d.w) * s; sw > maxImageW+1e-9 {
			t.Errorf("%dx%d scaled width %v exceeds %d", d.w, d.h, sw, maxImageW)
		}
		if sh := float64(d.h) * s; sh > maxImageH+1e-9 {
			t.Errorf("%dx%d scaled height %v exceeds %d", d.w, d.h, sh, maxImageH)
		}
	}
}

func TestFitScale_degenerateInput(t *testing.T) {
	t.Parallel()

	if s := fitScale(0, 100); s != 0 {
		t.Errorf("fitScale(0,100) got %v, want 0", s)
	}
}

func TestImagePlacement_centeredAndAnchored(t *testing.T) {
	t.Parallel()

	x, y, sw, _ := imagePlacement(600, 600, true)
	if wantX := (CanvasSize - sw) / 2; x != wantX {
		t.Errorf("x got %d, want %d", x, wantX)
	}
	if want := safeTop + imageTopInset; y != want {
		t.Errorf("y got %d, want %d", y, want)
	}
}

func TestImagePlacement_hiddenPriceShiftsDown(t *testing.T) {
	t.Parallel()

	_, yShown, _, _ := imagePlacement(600, 600, true)
	_, yHidden, _, _ := imagePlacement(600, 600, false)
	if yHidden-yShown != noPriceShift {
		t.Errorf("vertical shift got %d, want %d", yHidden-yShown, noPriceShift)
	}
}

package render

// Config is the per-render configuration supplied by the control surface.
// Flags gate layer presence only; the drawing order never changes. Any
// combination of flags is legal and produces a deterministic raster.
type Config struct {
	ShowPrice      bool
	ShowAutoBadges bool // installments badge + pickup pill
	ShowBankBadge  bool
	OverlayRef     string // URL or data URI; empty renders without a frame
}

func DefaultConfig() Config {
	return Config{ShowPrice: true, ShowAutoBadges: true}
}

package slideshot

import "time"

// Default capture parameters. They match the conventions of HTML slide
// decks generated by common templates: each slide is a top-level element
// carrying the "slide" class.
const (
	// DefaultSelector is the CSS selector used to locate slide elements.
	DefaultSelector = ".slide"

	// DefaultSettleWait is how long a page is given to finish layout,
	// font loading and animations before slides are queried.
	DefaultSettleWait = 3 * time.Second
)

// DeckConfig controls how slides are located and captured within a page.
//
// A nil DeckConfig or zero-value fields will use sensible defaults:
// the ".slide" selector, a 3 second settle wait, and the browser's
// default device pixel ratio.
type DeckConfig struct {
	// Selector is the CSS selector matching slide elements. All matches
	// are captured in document order. Defaults to ".slide".
	Selector string

	// SettleWait is the fixed delay after the page's body is ready and
	// before slides are queried. It is not content-aware. Defaults to
	// 3 seconds.
	SettleWait time.Duration

	// Scale is the device scale factor applied to screenshots. Use 2.0
	// for retina-quality output. Defaults to 1.0.
	Scale float64
}

// DefaultDeckConfig returns a DeckConfig with sensible defaults.
func DefaultDeckConfig() DeckConfig {
	return DeckConfig{
		Selector:   DefaultSelector,
		SettleWait: DefaultSettleWait,
		Scale:      1.0,
	}
}

// resolved returns a DeckConfig with all zero values replaced by defaults.
func (d *DeckConfig) resolved() DeckConfig {
	def := DefaultDeckConfig()
	if d == nil {
		return def
	}
	r := *d
	if r.Selector == "" {
		r.Selector = def.Selector
	}
	if r.SettleWait <= 0 {
		r.SettleWait = def.SettleWait
	}
	if r.Scale <= 0 {
		r.Scale = def.Scale
	}
	return r
}

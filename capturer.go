package slideshot

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
)

// Capturer renders HTML slide decks in a headless browser and produces
// per-slide PNG screenshots.
//
// A Capturer manages a headless browser instance that is reused across
// multiple decks for performance. It is safe for concurrent use; each
// capture runs in its own browser tab.
//
// Call [Capturer.Close] when the Capturer is no longer needed to release
// browser resources.
type Capturer struct {
	cfg           capturerConfig
	allocCtx      context.Context
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

// NewCapturer creates a Capturer with the given options.
//
// It starts a headless browser in the background. The caller must call
// [Capturer.Close] when finished. An error here means the browser engine
// could not be launched at all; no capture can succeed in that state.
func NewCapturer(opts ...Option) (*Capturer, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.chromePath == "" && cfg.autoDownload {
		path, err := resolveBrowser()
		if err != nil {
			return nil, err
		}
		cfg.chromePath = path
	}

	allocOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("disable-translate", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("headless", cfg.headless),
	)
	if cfg.chromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(cfg.chromePath))
	}
	if cfg.noSandbox {
		allocOpts = append(allocOpts, chromedp.Flag("no-sandbox", true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Start the browser eagerly so launch errors surface at creation time.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("slideshot: starting browser: %w", err)
	}

	return &Capturer{
		cfg:           cfg,
		allocCtx:      allocCtx,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
	}, nil
}

// Close releases all resources held by the Capturer, including the
// browser process. Close is idempotent.
func (c *Capturer) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.browserCancel()
	c.allocCancel()
	return nil
}

// CaptureHTML renders an HTML string and captures its slide elements.
// If deck is nil, [DefaultDeckConfig] values are used.
func (c *Capturer) CaptureHTML(ctx context.Context, html string, deck *DeckConfig) (*Deck, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	f, err := os.CreateTemp("", "slideshot-*.html")
	if err != nil {
		return nil, fmt.Errorf("slideshot: creating temp file: %w", err)
	}
	name := f.Name()
	defer os.Remove(name)

	if _, err := f.WriteString(html); err != nil {
		f.Close()
		return nil, fmt.Errorf("slideshot: writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("slideshot: closing temp file: %w", err)
	}

	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, fmt.Errorf("slideshot: resolving path: %w", err)
	}
	return c.capture(ctx, "file://"+abs, deck)
}

// CaptureURL renders the web page at rawURL and captures its slide elements.
// If deck is nil, [DefaultDeckConfig] values are used.
func (c *Capturer) CaptureURL(ctx context.Context, rawURL string, deck *DeckConfig) (*Deck, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return nil, fmt.Errorf("slideshot: invalid URL %q: %w", rawURL, err)
	}
	return c.capture(ctx, rawURL, deck)
}

// CaptureFile renders a local HTML file and captures its slide elements.
// If deck is nil, [DefaultDeckConfig] values are used.
func (c *Capturer) CaptureFile(ctx context.Context, path string, deck *DeckConfig) (*Deck, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("slideshot: resolving path: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("slideshot: %w", err)
	}
	return c.capture(ctx, "file://"+abs, deck)
}

// capture performs the actual navigation, slide query and screenshots.
func (c *Capturer) capture(ctx context.Context, targetURL string, deck *DeckConfig) (*Deck, error) {
	resolved := deck.resolved()

	if c.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.timeout)
		defer cancel()
	}

	tabCtx, tabCancel := chromedp.NewContext(c.browserCtx)
	defer tabCancel()

	// AtLeast(0) lets a page without any matching element produce an
	// empty deck instead of waiting for one to appear.
	var nodes []*cdp.Node
	if err := chromedp.Run(tabCtx,
		chromedp.Navigate(targetURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(resolved.SettleWait),
		chromedp.Nodes(resolved.Selector, &nodes, chromedp.ByQueryAll, chromedp.AtLeast(0)),
	); err != nil {
		return nil, fmt.Errorf("slideshot: loading %s: %w", targetURL, err)
	}

	result := &Deck{Source: targetURL, Images: make([]*Image, 0, len(nodes))}
	for i, node := range nodes {
		var buf []byte
		if err := chromedp.Run(tabCtx,
			chromedp.ScreenshotScale([]cdp.NodeID{node.NodeID}, resolved.Scale, &buf, chromedp.ByNodeID),
		); err != nil {
			return nil, fmt.Errorf("slideshot: capturing slide %d of %s: %w", i+1, targetURL, err)
		}
		result.Images = append(result.Images, &Image{data: buf})
	}
	return result, nil
}

func (c *Capturer) checkClosed() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	return nil
}

// --- Package-level convenience functions ---

// CaptureHTML captures slides from an HTML string using a temporary
// [Capturer]. This is convenient for one-off captures. For repeated use,
// create a [Capturer] with [NewCapturer] to reuse the browser instance.
func CaptureHTML(ctx context.Context, html string, deck *DeckConfig, opts ...Option) (*Deck, error) {
	c, err := NewCapturer(opts...)
	if err != nil {
		return nil, err
	}
	defer c.Close()
	return c.CaptureHTML(ctx, html, deck)
}

// CaptureURL captures slides from a web page using a temporary [Capturer].
func CaptureURL(ctx context.Context, rawURL string, deck *DeckConfig, opts ...Option) (*Deck, error) {
	c, err := NewCapturer(opts...)
	if err != nil {
		return nil, err
	}
	defer c.Close()
	return c.CaptureURL(ctx, rawURL, deck)
}

// CaptureFile captures slides from a local HTML file using a temporary [Capturer].
func CaptureFile(ctx context.Context, path string, deck *DeckConfig, opts ...Option) (*Deck, error) {
	c, err := NewCapturer(opts...)
	if err != nil {
		return nil, err
	}
	defer c.Close()
	return c.CaptureFile(ctx, path, deck)
}

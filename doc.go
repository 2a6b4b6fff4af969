// Package slideshot batch-converts HTML slide decks into per-slide PNG
// screenshots using headless Chrome (Chrome DevTools Protocol).
//
// Each element matching a CSS selector (".slide" by default) is captured
// as one PNG, cropped to its rendered bounding box, in document order.
//
// # One-off captures
//
// For a single deck use the package-level helpers:
//
//	deck, err := slideshot.CaptureFile(ctx, "talk.html", nil)
//
// For repeated captures create a [Capturer], which reuses the browser process:
//
//	c, err := slideshot.NewCapturer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	deck, err := c.CaptureFile(ctx, "talk.html", nil)
//	deck, err  = c.CaptureHTML(ctx, `<div class="slide">Hi</div>`, nil)
//	deck, err  = c.CaptureURL(ctx, "https://example.com/deck", nil)
//
// Use [DeckConfig] to control the selector, settle wait, and scale:
//
//	deck, err := c.CaptureFile(ctx, "talk.html", &slideshot.DeckConfig{
//	    Selector:   ".step",
//	    SettleWait: 5 * time.Second,
//	    Scale:      2.0,
//	})
//
// Each captured [Image] gives flexible access to the PNG bytes:
//
//	img.Bytes()                         // []byte
//	img.Base64()                        // base64 string (RFC 4648)
//	img.Reader()                        // *bytes.Reader
//	img.WriteToFile("slide_01.png", 0o644)
//
// # Batch runs
//
// A [Batch] scans a directory for *.html files and writes every deck's
// slides under output_images/<name>/slide_NN.png:
//
//	b := slideshot.NewBatch(c, slideshot.BatchConfig{SourceDir: "."})
//	sum, err := b.Run(ctx)
//
// Rerunning a batch with unchanged inputs rewrites the same paths;
// existing images are overwritten and no backups are kept.
//
// Chrome or Chromium must be available in PATH, or use [WithAutoDownload]:
//
//	c, err := slideshot.NewCapturer(slideshot.WithAutoDownload())
package slideshot

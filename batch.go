package slideshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Summary reports the outcome of a batch run.
type Summary struct {
	// FilesFound is the number of *.html files discovered.
	FilesFound int

	// FilesProcessed is the number of files the batch worked through,
	// including files that matched zero slides and files that failed.
	// A file that fails to load counts as processed with zero slides.
	FilesProcessed int

	// FilesFailed is how many of the processed files could not be
	// loaded or could not have all their images written.
	FilesFailed int

	// ImagesWritten is the total number of slide images written.
	ImagesWritten int
}

// Batch drives a Capturer over every HTML file in a directory, writing
// per-slide PNGs under one subdirectory per input file.
//
// Files are processed independently: a file that fails to load or write
// never prevents the remaining files from being captured. Only a browser
// that cannot be launched at all (a [NewCapturer] error, before a Batch
// exists) aborts a run.
type Batch struct {
	cfg      BatchConfig
	capturer *Capturer
}

// NewBatch creates a Batch using c for rendering. Zero-value fields of
// cfg are replaced with defaults; see [BatchConfig].
func NewBatch(c *Capturer, cfg BatchConfig) *Batch {
	cfg.defaults()
	return &Batch{cfg: cfg, capturer: c}
}

// Run discovers and captures every HTML file in the configured source
// directory and returns a summary of the work done.
//
// Finding no HTML files is a normal outcome: Run logs it and returns an
// empty summary with a nil error. Per-file failures are logged, counted
// in the summary, and do not stop the batch. Run returns an error only
// when the source directory cannot be read or ctx is canceled.
func (b *Batch) Run(ctx context.Context) (*Summary, error) {
	files, err := DiscoverHTML(b.cfg.SourceDir)
	if err != nil {
		return nil, err
	}

	sum := &Summary{FilesFound: len(files)}
	if len(files) == 0 {
		b.cfg.Logger.Info().Str("dir", b.cfg.SourceDir).Msg("no HTML files found")
		return sum, nil
	}
	b.cfg.Logger.Info().Int("files", len(files)).Str("dir", b.cfg.SourceDir).Msg("starting batch")

	if b.cfg.Workers == 1 {
		for _, f := range files {
			if err := ctx.Err(); err != nil {
				return sum, err
			}
			written, failed := b.processFile(ctx, f)
			sum.FilesProcessed++
			sum.ImagesWritten += written
			if failed {
				sum.FilesFailed++
			}
		}
	} else {
		b.runPool(ctx, files, sum)
		if err := ctx.Err(); err != nil {
			return sum, err
		}
	}

	b.cfg.Logger.Info().
		Int("files", sum.FilesProcessed).
		Int("failed", sum.FilesFailed).
		Int("images", sum.ImagesWritten).
		Msg("batch complete")
	return sum, nil
}

// runPool fans files out to Workers goroutines, each capturing in its own
// browser tab. Per-deck slide ordering is unaffected; only the order in
// which files complete varies.
func (b *Batch) runPool(ctx context.Context, files []string, sum *Summary) {
	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		queue = make(chan string)
	)

	for i := 0; i < b.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range queue {
				written, failed := b.processFile(ctx, f)
				mu.Lock()
				sum.FilesProcessed++
				sum.ImagesWritten += written
				if failed {
					sum.FilesFailed++
				}
				mu.Unlock()
			}
		}()
	}

	for _, f := range files {
		select {
		case <-ctx.Done():
			close(queue)
			wg.Wait()
			return
		case queue <- f:
		}
	}
	close(queue)
	wg.Wait()
}

// processFile captures one deck and writes its images. It returns the
// number of images written and whether the file is counted as failed.
// A write failure aborts the remaining slides of this file only.
func (b *Batch) processFile(ctx context.Context, path string) (written int, failed bool) {
	log := b.cfg.Logger.With().Str("file", filepath.Base(path)).Logger()

	deck, err := b.capturer.CaptureFile(ctx, path, &b.cfg.Deck)
	if err != nil {
		log.Error().Err(err).Msg("page load failed, skipping file")
		return 0, true
	}

	if deck.Len() == 0 {
		log.Warn().Str("selector", b.cfg.Deck.resolved().Selector).Msg("no slides found")
		return 0, false
	}
	log.Info().Int("slides", deck.Len()).Msg("capturing slides")

	base := deckBaseName(path)
	dir := filepath.Join(b.cfg.OutputRoot, base)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Error().Err(err).Msg("creating output directory failed")
		return 0, true
	}

	names := make([]string, 0, deck.Len())
	for i, img := range deck.Images {
		name := slideFileName(i+1, deck.Len())
		out := filepath.Join(dir, name)
		if err := img.WriteToFile(out, 0o644); err != nil {
			log.Error().Err(err).Str("image", name).Msg("write failed, aborting remaining slides")
			return written, true
		}
		written++
		names = append(names, out)
		log.Debug().Str("image", name).Int("bytes", img.Len()).Msg("captured")
	}

	if b.cfg.AssemblePDF {
		if err := assembleDeckPDF(dir, base, names); err != nil {
			log.Error().Err(err).Msg("pdf assembly failed")
		}
	}
	return written, false
}

// assembleDeckPDF combines the deck's images, in slide order, into a
// single PDF next to them, one image per page.
func assembleDeckPDF(dir, base string, images []string) error {
	out := filepath.Join(dir, base+".pdf")
	if err := api.ImportImagesFile(images, out, nil, nil); err != nil {
		return fmt.Errorf("slideshot: assembling %s: %w", out, err)
	}
	return nil
}

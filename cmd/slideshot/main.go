// slideshot batch-captures HTML slide decks into per-slide PNG images.
//
// Run with no arguments it scans the working directory for *.html files
// and writes output_images/<name>/slide_NN.png for every element
// matching the ".slide" selector in each file.
//
// Usage:
//
//	slideshot [--dir .] [--out output_images] [--selector .slide] ...
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	slideshot "github.com/porticus-lab/go-slide-shot"
)

func main() {
	app := &cli.App{
		Name:  "slideshot",
		Usage: "capture HTML slide decks as per-slide PNG screenshots",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Value: ".",
				Usage: "directory scanned for *.html files",
			},
			&cli.StringFlag{
				Name:  "out",
				Value: slideshot.DefaultOutputRoot,
				Usage: "output root; one subdirectory is created per input file",
			},
			&cli.StringFlag{
				Name:  "selector",
				Value: slideshot.DefaultSelector,
				Usage: "CSS selector marking slide boundaries",
			},
			&cli.DurationFlag{
				Name:  "settle",
				Value: slideshot.DefaultSettleWait,
				Usage: "fixed wait for page layout to settle before capturing",
			},
			&cli.Float64Flag{
				Name:  "scale",
				Value: 1.0,
				Usage: "device scale factor for screenshots (2.0 for retina)",
			},
			&cli.IntFlag{
				Name:  "workers",
				Value: 1,
				Usage: "files captured concurrently, one browser tab each",
			},
			&cli.BoolFlag{
				Name:  "pdf",
				Usage: "also assemble each deck's images into a PDF",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML config file; flags override its values",
			},
			&cli.StringFlag{
				Name:  "chrome",
				Usage: "path to the Chrome/Chromium executable",
			},
			&cli.BoolFlag{
				Name:  "no-sandbox",
				Usage: "disable the Chrome sandbox (needed when running as root)",
			},
			&cli.BoolFlag{
				Name:  "auto-download",
				Usage: "download a Chromium binary if none is installed",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log each captured slide",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 60 * time.Second,
				Usage: "per-file capture timeout",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	level := zerolog.InfoLevel
	if c.Bool("verbose") {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()

	cfg := slideshot.BatchConfig{}
	if path := c.String("config"); path != "" {
		loaded, err := slideshot.LoadBatchConfig(path)
		if err != nil {
			return err
		}
		cfg = *loaded
	}

	// Flags take precedence over config file values when set; the
	// defaulted flags fill in whatever the file left empty.
	if c.IsSet("dir") || cfg.SourceDir == "" {
		cfg.SourceDir = c.String("dir")
	}
	if c.IsSet("out") || cfg.OutputRoot == "" {
		cfg.OutputRoot = c.String("out")
	}
	if c.IsSet("selector") || cfg.Deck.Selector == "" {
		cfg.Deck.Selector = c.String("selector")
	}
	if c.IsSet("settle") || cfg.Deck.SettleWait == 0 {
		cfg.Deck.SettleWait = c.Duration("settle")
	}
	if c.IsSet("scale") || cfg.Deck.Scale == 0 {
		cfg.Deck.Scale = c.Float64("scale")
	}
	if c.IsSet("workers") || cfg.Workers == 0 {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("pdf") {
		cfg.AssemblePDF = c.Bool("pdf")
	}
	cfg.Logger = log

	opts := []slideshot.Option{
		slideshot.WithTimeout(c.Duration("timeout")),
	}
	if path := c.String("chrome"); path != "" {
		opts = append(opts, slideshot.WithChromePath(path))
	}
	if c.Bool("no-sandbox") {
		opts = append(opts, slideshot.WithNoSandbox())
	}
	if c.Bool("auto-download") {
		opts = append(opts, slideshot.WithAutoDownload())
	}

	// A browser that cannot launch is the one fatal condition; every
	// per-file problem is reported and skipped inside the batch.
	capturer, err := slideshot.NewCapturer(opts...)
	if err != nil {
		return err
	}
	defer capturer.Close()

	sum, err := slideshot.NewBatch(capturer, cfg).Run(c.Context)
	if err != nil {
		return err
	}

	if sum.FilesFound == 0 {
		fmt.Println("No HTML files found.")
		return nil
	}
	fmt.Printf("%d file(s) processed, %d failed, %d image(s) written to %s\n",
		sum.FilesProcessed, sum.FilesFailed, sum.ImagesWritten, cfg.OutputRoot)
	return nil
}

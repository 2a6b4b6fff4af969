package slideshot

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestBatchRun_NoInputFiles(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "output_images")

	// With nothing to capture the browser is never touched, so a nil
	// Capturer is fine here.
	b := NewBatch(nil, BatchConfig{SourceDir: dir, OutputRoot: out})
	sum, err := b.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sum.FilesFound != 0 || sum.FilesProcessed != 0 || sum.ImagesWritten != 0 {
		t.Errorf("summary = %+v, want all zero", sum)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("output root was created for an empty run")
	}
}

func TestBatchRun_MissingSourceDir(t *testing.T) {
	b := NewBatch(nil, BatchConfig{SourceDir: filepath.Join(t.TempDir(), "nope")})
	if _, err := b.Run(context.Background()); err == nil {
		t.Fatal("expected error for unreadable source directory")
	}
}

// writeTestPNG encodes a small solid-color PNG at path.
func writeTestPNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestAssembleDeckPDF(t *testing.T) {
	dir := t.TempDir()
	var images []string
	for _, name := range []string{"slide_01.png", "slide_02.png"} {
		p := filepath.Join(dir, name)
		writeTestPNG(t, p)
		images = append(images, p)
	}

	if err := assembleDeckPDF(dir, "deck", images); err != nil {
		t.Fatalf("assembleDeckPDF: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "deck.pdf"))
	if err != nil {
		t.Fatalf("reading assembled pdf: %v", err)
	}
	if len(data) < 5 || string(data[:5]) != "%PDF-" {
		t.Error("assembled file is not a valid PDF")
	}
}

func TestAssembleDeckPDF_MissingImage(t *testing.T) {
	dir := t.TempDir()
	err := assembleDeckPDF(dir, "deck", []string{filepath.Join(dir, "absent.png")})
	if err == nil {
		t.Fatal("expected error for missing source image")
	}
}

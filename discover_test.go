package slideshot

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("<html></html>"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverHTML(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.html", "a.html", "c.html"} {
		writeFixture(t, dir, name)
	}
	// None of these should match: wrong case, wrong extension, no extension.
	for _, name := range []string{"upper.HTML", "page.htm", "notes.txt", "README"} {
		writeFixture(t, dir, name)
	}
	// Matching names inside subdirectories are ignored too.
	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFixture(t, sub, "deep.html")

	files, err := DiscoverHTML(dir)
	if err != nil {
		t.Fatalf("DiscoverHTML: %v", err)
	}

	want := []string{
		filepath.Join(dir, "a.html"),
		filepath.Join(dir, "b.html"),
		filepath.Join(dir, "c.html"),
	}
	if len(files) != len(want) {
		t.Fatalf("got %d files %v, want %d", len(files), files, len(want))
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestDiscoverHTML_SkipsDirWithSuffix(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "folder.html"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := DiscoverHTML(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Errorf("directory with .html suffix was listed: %v", files)
	}
}

func TestDiscoverHTML_Empty(t *testing.T) {
	files, err := DiscoverHTML(t.TempDir())
	if err != nil {
		t.Fatalf("DiscoverHTML: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %v", files)
	}
}

func TestDiscoverHTML_MissingDir(t *testing.T) {
	_, err := DiscoverHTML(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

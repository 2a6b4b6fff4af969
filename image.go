package slideshot

import (
	"bytes"
	"encoding/base64"
	"io"
	"os"
)

// Deck holds the captured slides of a single rendered page, in document
// order. A deck with no images means the page loaded but no element
// matched the slide selector.
type Deck struct {
	// Source is the URL the page was loaded from (a file:// URL for
	// local decks).
	Source string

	// Images holds one PNG screenshot per matched slide element.
	Images []*Image
}

// Len returns the number of captured slides.
func (d *Deck) Len() int {
	return len(d.Images)
}

// Image holds one captured PNG and provides helpers for common output
// formats such as raw bytes, base64 encoding, and streaming readers.
//
// Its methods may be called multiple times — the underlying data is
// never modified.
type Image struct {
	data []byte
}

// Bytes returns the raw PNG content.
func (im *Image) Bytes() []byte {
	return im.data
}

// Base64 returns the PNG encoded as a standard base64 string (RFC 4648).
// This is useful for embedding in JSON payloads or data URIs.
func (im *Image) Base64() string {
	return base64.StdEncoding.EncodeToString(im.data)
}

// Reader returns an [*bytes.Reader] over the PNG content.
// This is suitable for streaming uploads or any API that accepts an
// [io.Reader].
func (im *Image) Reader() *bytes.Reader {
	return bytes.NewReader(im.data)
}

// WriteTo writes the full PNG content to w. It implements [io.WriterTo].
func (im *Image) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(im.data)
	return int64(n), err
}

// WriteToFile writes the PNG to the file at path, creating it if needed
// and silently replacing any existing file.
func (im *Image) WriteToFile(path string, perm os.FileMode) error {
	return os.WriteFile(path, im.data, perm)
}

// Len returns the size of the PNG in bytes.
func (im *Image) Len() int {
	return len(im.data)
}

package slideshot

import "errors"

// Sentinel errors returned by the library.
var (
	// ErrClosed is returned when attempting to use a closed [Capturer].
	ErrClosed = errors.New("slideshot: capturer is closed")
)

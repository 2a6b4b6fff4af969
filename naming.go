package slideshot

import "fmt"

// slidePadWidth returns the zero-padding width for slide numbers in a
// deck of total slides: at least two digits, widening only when a deck
// holds 100 or more slides so names stay sortable within one deck.
func slidePadWidth(total int) int {
	width := 2
	for n := total; n >= 100; n /= 10 {
		width++
	}
	return width
}

// slideFileName returns the file name for the index-th slide (1-based)
// of a deck with total slides, e.g. "slide_01.png".
func slideFileName(index, total int) string {
	return fmt.Sprintf("slide_%0*d.png", slidePadWidth(total), index)
}

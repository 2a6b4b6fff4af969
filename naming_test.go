package slideshot

import "testing"

func TestSlidePadWidth(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{1, 2},
		{9, 2},
		{10, 2},
		{99, 2},
		{100, 3},
		{999, 3},
		{1000, 4},
	}
	for _, tt := range tests {
		if got := slidePadWidth(tt.total); got != tt.want {
			t.Errorf("slidePadWidth(%d) = %d, want %d", tt.total, got, tt.want)
		}
	}
}

func TestSlideFileName(t *testing.T) {
	tests := []struct {
		index, total int
		want         string
	}{
		{1, 3, "slide_01.png"},
		{3, 3, "slide_03.png"},
		{12, 99, "slide_12.png"},
		{1, 100, "slide_001.png"},
		{100, 100, "slide_100.png"},
		{7, 1000, "slide_0007.png"},
	}
	for _, tt := range tests {
		if got := slideFileName(tt.index, tt.total); got != tt.want {
			t.Errorf("slideFileName(%d, %d) = %q, want %q", tt.index, tt.total, got, tt.want)
		}
	}
}

func TestDeckBaseName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"batch_1.html", "batch_1"},
		{"/tmp/decks/batch_2.html", "batch_2"},
		{"no_suffix", "no_suffix"},
		{"weird.html.html", "weird.html"},
	}
	for _, tt := range tests {
		if got := deckBaseName(tt.path); got != tt.want {
			t.Errorf("deckBaseName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

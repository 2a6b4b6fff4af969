package slideshot

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// htmlExt is the exact, case-sensitive suffix an input file must carry.
const htmlExt = ".html"

// DiscoverHTML returns the paths of all regular files directly inside dir
// whose name ends with ".html" (exact case, no recursion into
// subdirectories). The result is sorted lexicographically by name so
// repeated runs process files in the same order.
//
// An empty result is not an error; it means there is nothing to do.
func DiscoverHTML(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("slideshot: reading directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), htmlExt) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// deckBaseName derives the output subdirectory name for an input file:
// the file name with its ".html" suffix stripped. No further
// sanitization is performed.
func deckBaseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), htmlExt)
}

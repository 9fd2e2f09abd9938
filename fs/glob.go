package fs

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/mdrender"
)

// Glob returns the files under root matching pattern, relative to root and
// sorted. Patterns support ** for recursive matching.
func Glob(root, pattern string) ([]string, error) {
	if pattern == "" {
		return nil, fmt.Errorf("pattern is required: %w", mdrender.ErrValidation)
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, mdrender.ErrValidation)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("access root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s must be a directory: %w", root, mdrender.ErrValidation)
	}

	var matches []string
	err = doublestar.GlobWalk(os.DirFS(root), pattern, func(path string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		matches = append(matches, filepath.FromSlash(path))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("match pattern: %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	kerrors "github.com/PolarWolf314/scytale/internal/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// FileFilter selects which resolved files are kept.
type FileFilter func(path string) bool

// WithSuffix keeps files ending in suffix.
func WithSuffix(suffix string) FileFilter {
	return func(path string) bool { return strings.HasSuffix(path, suffix) }
}

// WithoutSuffix keeps files not ending in suffix.
func WithoutSuffix(suffix string) FileFilter {
	return func(path string) bool { return !strings.HasSuffix(path, suffix) }
}

// ResolveFiles expands user-provided paths and globs, relative to baseDir,
// into a sorted, de-duplicated list of regular files accepted by keep.
// Globs support ** via doublestar. A literal path that does not exist is
// reported as ErrFileNotFound.
func ResolveFiles(patterns []string, baseDir string, keep FileFilter) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		absPattern := pattern
		if !filepath.IsAbs(pattern) {
			absPattern = filepath.Join(baseDir, pattern)
		}

		var matches []string
		if isGlob(pattern) {
			var err error
			matches, err = doublestar.FilepathGlob(absPattern)
			if err != nil {
				return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
			}
		} else {
			if _, err := os.Stat(absPattern); err != nil {
				if os.IsNotExist(err) {
					return nil, fmt.Errorf("%w: %s", kerrors.ErrFileNotFound, pattern)
				}
				return nil, fmt.Errorf("checking %s: %w", pattern, err)
			}
			matches = []string{absPattern}
		}

		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil || info.IsDir() {
				continue
			}
			if keep != nil && !keep(m) {
				continue
			}
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

func isGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

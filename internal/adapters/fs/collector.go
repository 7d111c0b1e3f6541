package fs

import (
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/nest/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceCollector = (*Collector)(nil)

// Collector implements ports.SourceCollector using filepath.Glob and the Walker.
type Collector struct {
	walker *Walker
}

// NewCollector creates a new Collector.
func NewCollector(walker *Walker) *Collector {
	return &Collector{walker: walker}
}

// Collect resolves paths to a sorted list of unique files.
// Each path may be a file, a directory or a glob pattern.
func (c *Collector) Collect(paths []string, ignores []string) ([]string, error) {
	uniquePaths := make(map[string]bool)

	for _, path := range paths {
		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", path)
		}

		if len(matches) == 0 {
			return nil, zerr.With(zerr.New("input not found"), "path", path)
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", match)
			}
			if !info.IsDir() {
				uniquePaths[match] = true
				continue
			}
			for file := range c.walker.WalkFiles(match, ignores) {
				uniquePaths[file] = true
			}
		}
	}

	result := make([]string, 0, len(uniquePaths))
	for path := range uniquePaths {
		result = append(result, path)
	}
	sort.Strings(result)

	return result, nil
}

// Package fs provides file system adapters for reading, walking and hashing files.
package fs

import (
	"errors"
	"io/fs"
	"iter"
	"path/filepath"
)

// errSkipFile marks an ignored file inside the walk callback.
var errSkipFile = errors.New("skip file")

// alwaysSkipped lists directories that never contain sources to transform.
var alwaysSkipped = []string{".git", ".jj", "node_modules"}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files below root, skipping version control metadata,
// node_modules and entries whose base name matches one of ignores.
// Yielded paths include root as their prefix.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if path != root {
				switch skip := w.shouldSkip(d, ignores); {
				case errors.Is(skip, errSkipFile):
					return nil
				case skip != nil:
					return skip
				}
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

// shouldSkip returns filepath.SkipDir for ignored directories, errSkipFile
// for ignored files and nil otherwise.
func (w *Walker) shouldSkip(d fs.DirEntry, ignores []string) error {
	name := d.Name()

	if d.IsDir() {
		for _, dir := range alwaysSkipped {
			if name == dir {
				return filepath.SkipDir
			}
		}
	}

	for _, ignore := range ignores {
		matched, _ := filepath.Match(ignore, name)
		if matched {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return errSkipFile
		}
	}

	return nil
}

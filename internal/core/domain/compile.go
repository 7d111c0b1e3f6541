package domain

import (
	"path/filepath"
	"slices"
)

// DefaultExtensions are the extensions compiled when the caller supplies none.
var DefaultExtensions = []string{".js", ".jsx", ".es6", ".es"}

// CanCompile reports whether filename has one of the given extensions.
// The extensions include the leading dot. An empty list falls back to
// DefaultExtensions.
func CanCompile(filename string, exts []string) bool {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	return slices.Contains(exts, filepath.Ext(filename))
}

// Package ports defines the core interfaces for the application.
package ports

// FileSystem is the read-only filesystem view used by configuration discovery.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Exists reports whether a regular file exists at path.
	Exists(path string) bool
	// ReadFile returns the contents of the file at path.
	ReadFile(path string) ([]byte, error)
}

package ports

// Hasher defines the interface for computing content fingerprints.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// HashContent returns a stable fingerprint of the given parts.
	HashContent(parts ...string) string
}

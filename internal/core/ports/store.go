package ports

import "go.trai.ch/nest/internal/core/domain"

// TransformStore persists transform outputs keyed by cache key.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type TransformStore interface {
	// Get retrieves the record for the given cache key.
	// Returns nil, nil if not found.
	Get(key string) (*domain.TransformRecord, error)

	// Put stores the record.
	Put(record domain.TransformRecord) error
}

// TransformStoreFactory opens a TransformStore rooted at a directory.
type TransformStoreFactory interface {
	Open(dir string) (TransformStore, error)
}

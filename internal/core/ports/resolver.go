package ports

import "go.trai.ch/nest/internal/core/domain"

// ConfigResolver finds the transform configuration that applies to a file.
//
//go:generate mockgen -destination=mocks/resolver_mock.go -package=mocks -source=resolver.go
type ConfigResolver interface {
	// Resolve returns the nearest ancestor configuration for filename.
	// The result is never nil; an empty map means no configuration was found.
	// The result is owned by the caller.
	Resolve(filename string) (domain.Options, error)
}

// ScriptEvaluator evaluates a script configuration file and returns its export.
type ScriptEvaluator interface {
	// Evaluate runs src, loaded from path, and returns the exported value.
	Evaluate(path string, src []byte) (any, error)
}

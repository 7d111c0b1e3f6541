package ports

import (
	"context"

	"go.trai.ch/nest/internal/core/domain"
)

// TransformEngine performs the actual source transformation.
//
//go:generate go run go.uber.org/mock/mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks
type TransformEngine interface {
	// CanCompile reports whether filename should be transformed. altExts, when
	// non-empty, replaces the engine's default extension set.
	CanCompile(filename string, altExts []string) bool

	// Transform transforms source with the given options.
	// A nil result with a nil error means the engine intentionally skipped the file.
	Transform(ctx context.Context, source string, opts domain.Options) (*domain.TransformResult, error)
}

// Instrumenter is implemented by engines that report whether they can run
// the coverage instrumentation plugin. Engines without it are assumed able to.
type Instrumenter interface {
	CanInstrument() bool
}

// EngineFactory builds the TransformEngine selected by the settings.
type EngineFactory interface {
	NewEngine(settings domain.EngineSettings) (TransformEngine, error)
}

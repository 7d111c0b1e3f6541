// Package engine selects the transform engine named by the settings.
package engine

import (
	"go.trai.ch/nest/internal/adapters/esbuild"
	"go.trai.ch/nest/internal/adapters/shell"
	"go.trai.ch/nest/internal/core/domain"
	"go.trai.ch/nest/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.EngineFactory = (*Factory)(nil)

// Factory builds esbuild or command engines.
type Factory struct {
	logger ports.Logger
}

// NewFactory creates a new Factory.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger}
}

// NewEngine returns the engine for settings.Kind.
func (f *Factory) NewEngine(settings domain.EngineSettings) (ports.TransformEngine, error) {
	switch settings.Kind {
	case domain.EngineEsbuild, "":
		e, err := esbuild.NewEngine(settings, f.logger)
		if err != nil {
			return nil, err
		}
		return e, nil
	case domain.EngineCommand:
		e, err := shell.NewEngine(settings, f.logger)
		if err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownEngine, "invalid engine kind"), "kind", settings.Kind)
	}
}

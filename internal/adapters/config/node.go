package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nest/internal/adapters/fs"
	"go.trai.ch/nest/internal/adapters/script"
	"go.trai.ch/nest/internal/core/ports"
)

const (
	// ResolverNodeID is the unique identifier for the configuration resolver node.
	ResolverNodeID graft.ID = "adapter.config.resolver"
	// SettingsNodeID is the unique identifier for the settings loader node.
	SettingsNodeID graft.ID = "adapter.config.settings"
)

func init() {
	graft.Register(graft.Node[ports.ConfigResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FileSystemNodeID, script.NodeID},
		Run: func(ctx context.Context) (ports.ConfigResolver, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			evaluator, err := graft.Dep[ports.ScriptEvaluator](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(fsys, evaluator), nil
		},
	})

	graft.Register(graft.Node[ports.SettingsLoader]{
		ID:        SettingsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SettingsLoader, error) {
			return NewSettingsLoader(), nil
		},
	})
}

package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nest/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/nest/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/nest/internal/adapters/engine"             //nolint:depguard // Wired in app layer
	"go.trai.ch/nest/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/nest/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/nest/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/nest/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
type Components struct {
	App    *App
	Logger *logger.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			config.ResolverNodeID,
			engine.NodeID,
			cas.NodeID,
			fs.CollectorNodeID,
			fs.FileSystemNodeID,
			progrock.NodeID,
			logger.PortNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	settings, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.ConfigResolver](ctx)
	if err != nil {
		return nil, err
	}

	engines, err := graft.Dep[ports.EngineFactory](ctx)
	if err != nil {
		return nil, err
	}

	stores, err := graft.Dep[ports.TransformStoreFactory](ctx)
	if err != nil {
		return nil, err
	}

	collector, err := graft.Dep[ports.SourceCollector](ctx)
	if err != nil {
		return nil, err
	}

	fsys, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(settings, resolver, engines, stores, collector, fsys, telemetry, log), nil
}

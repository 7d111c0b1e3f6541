// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/nest/internal/adapters/cas"
	_ "go.trai.ch/nest/internal/adapters/config"
	_ "go.trai.ch/nest/internal/adapters/engine"
	_ "go.trai.ch/nest/internal/adapters/fs"
	_ "go.trai.ch/nest/internal/adapters/logger"
	_ "go.trai.ch/nest/internal/adapters/script"
	_ "go.trai.ch/nest/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/nest/internal/app"
)

// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/snake/internal/adapters/cas"
	_ "go.trai.ch/snake/internal/adapters/config"
	_ "go.trai.ch/snake/internal/adapters/fs"
	_ "go.trai.ch/snake/internal/adapters/linear"
	_ "go.trai.ch/snake/internal/adapters/logger"
	_ "go.trai.ch/snake/internal/adapters/prompt"
	_ "go.trai.ch/snake/internal/adapters/shell"
	_ "go.trai.ch/snake/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/snake/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/snake/internal/app"
	_ "go.trai.ch/snake/internal/engine/oracle"
	_ "go.trai.ch/snake/internal/engine/scheduler"
	_ "go.trai.ch/snake/internal/engine/selector"
)

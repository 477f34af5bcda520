// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/shelf/internal/adapters/config"
	_ "go.trai.ch/shelf/internal/adapters/fs"
	_ "go.trai.ch/shelf/internal/adapters/lockfile"
	_ "go.trai.ch/shelf/internal/adapters/logger"
	_ "go.trai.ch/shelf/internal/adapters/store"
	_ "go.trai.ch/shelf/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/shelf/internal/app"
	_ "go.trai.ch/shelf/internal/engine/reconciler"
	_ "go.trai.ch/shelf/internal/engine/vendor"
)

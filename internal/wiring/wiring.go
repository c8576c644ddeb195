// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/eagroute/internal/adapters/backend"
	_ "go.trai.ch/eagroute/internal/adapters/config"
	_ "go.trai.ch/eagroute/internal/adapters/logger"
	_ "go.trai.ch/eagroute/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/eagroute/internal/app"
)

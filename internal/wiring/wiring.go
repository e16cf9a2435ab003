// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/locker/internal/adapters/config"
	_ "go.trai.ch/locker/internal/adapters/lockfile"
	_ "go.trai.ch/locker/internal/adapters/logger"
	// Register app nodes.
	_ "go.trai.ch/locker/internal/app"
)

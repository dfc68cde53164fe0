// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/buildinfo/internal/adapters/cas"
	_ "go.trai.ch/buildinfo/internal/adapters/config"
	_ "go.trai.ch/buildinfo/internal/adapters/format"
	_ "go.trai.ch/buildinfo/internal/adapters/fs"
	_ "go.trai.ch/buildinfo/internal/adapters/logger"
	// Register app nodes.
	_ "go.trai.ch/buildinfo/internal/app"
)

// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/equip/internal/adapters/cargo"
	_ "go.trai.ch/equip/internal/adapters/config"
	_ "go.trai.ch/equip/internal/adapters/logger"
	_ "go.trai.ch/equip/internal/adapters/shell"
	_ "go.trai.ch/equip/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/equip/internal/app"
	_ "go.trai.ch/equip/internal/engine/sandbox"
)

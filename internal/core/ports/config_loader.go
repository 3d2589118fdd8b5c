package ports

import "go.trai.ch/equip/internal/core/domain"

// ConfigLoader defines the interface for loading the optional tool
// configuration from a project directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given directory. A missing file
	// yields the zero-value configuration, not an error.
	Load(dir string) (domain.ToolConfig, error)
}

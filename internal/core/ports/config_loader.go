package ports

import "go.trai.ch/buildinfo/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given project root.
	// A missing configuration file yields domain.DefaultConfig().
	Load(root string) (domain.Config, error)
}

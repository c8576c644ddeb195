package ports

import "go.trai.ch/eagroute/internal/core/domain"

// ConfigLoader defines the interface for loading client settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves settings from defaults, the given file (or the default
	// file in the working directory when path is empty) and the environment.
	Load(path string) (*domain.Settings, error)
}

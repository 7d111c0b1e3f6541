package ports

import "go.trai.ch/nest/internal/core/domain"

// SettingsLoader loads nest's own settings.
//
//go:generate mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type SettingsLoader interface {
	// Load reads the settings file at path, applying defaults and environment overrides.
	// A missing file is not an error.
	Load(path string) (domain.Settings, error)
}

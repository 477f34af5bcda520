package ports

import "go.trai.ch/shelf/internal/core/domain"

// ManifestLoader defines the interface for loading the Shelffile.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads and parses the manifest at path, computing its fingerprint.
	Load(path string) (*domain.Manifest, error)
}

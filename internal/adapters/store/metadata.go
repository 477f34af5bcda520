package store

import (
	"os"
	"path/filepath"

	"go.trai.ch/shelf/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Metadata is the content of a cookbook's metadata.yaml.
type Metadata struct {
	Name         string            `yaml:"name"`
	Version      string            `yaml:"version"`
	Dependencies map[string]string `yaml:"dependencies"`
}

// ReadMetadata parses the metadata file of the cookbook in dir.
func ReadMetadata(dir string) (*Metadata, error) {
	path := filepath.Join(dir, domain.MetadataFileName)
	data, err := os.ReadFile(path) //nolint:gosec // Path is built from the store root
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read cookbook metadata"), "path", path)
	}

	var md Metadata
	if err := yaml.Unmarshal(data, &md); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse cookbook metadata"), "path", path)
	}
	if md.Name == "" {
		return nil, zerr.With(zerr.New("cookbook metadata has no name"), "path", path)
	}
	if !domain.ValidVersion(md.Version) {
		return nil, zerr.With(zerr.With(zerr.New("cookbook metadata has an invalid version"), "path", path), "version", md.Version)
	}
	return &md, nil
}

// Package config loads the Shelffile manifest and process settings.
package config

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/shelf/internal/core/domain"
	"go.trai.ch/shelf/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ManifestLoader = (*Loader)(nil)

// Loader implements ports.ManifestLoader for YAML Shelffiles.
type Loader struct {
	hasher ports.Hasher
}

// NewLoader creates a new Loader that fingerprints manifests with hasher.
func NewLoader(hasher ports.Hasher) *Loader {
	return &Loader{hasher: hasher}
}

// Load reads the Shelffile at path.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrManifestNotFound, "no Shelffile at path"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrManifestEmpty, "Shelffile has no content"), "path", path)
	}

	var shelffile Shelffile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&shelffile); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(domain.ErrManifestInvalid, err.Error()), "path", path)
	}

	if len(shelffile.Cookbooks) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrManifestEmpty, "Shelffile declares no cookbooks"), "path", path)
	}

	sources, err := l.sources(filepath.Dir(path), shelffile.Cookbooks)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return domain.NewManifest(path, l.hasher.Fingerprint(data), sources)
}

func (l *Loader) sources(baseDir string, dtos []CookbookDTO) ([]domain.Source, error) {
	sources := make([]domain.Source, 0, len(dtos))
	for i, dto := range dtos {
		name := strings.TrimSpace(dto.Name)
		if name == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrManifestInvalid, "cookbook without a name"), "index", i)
		}

		constraint, err := domain.ParseConstraint(dto.Constraint)
		if err != nil {
			return nil, zerr.With(err, "source", name)
		}

		src := domain.NewSource(name, constraint)
		if dto.CookbookName != "" {
			src.CookbookName = dto.CookbookName
		}
		if len(dto.Group) > 0 {
			src.Groups = dto.Group
		}
		if dto.Path != "" {
			src.Path = dto.Path
			if !filepath.IsAbs(src.Path) {
				src.Path = filepath.Join(baseDir, src.Path)
			}
		}
		sources = append(sources, src)
	}
	return sources, nil
}

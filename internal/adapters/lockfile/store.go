// Package lockfile persists the Shelffile.lock JSON document.
package lockfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/shelf/internal/core/domain"
	"go.trai.ch/shelf/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockfileStore = (*Store)(nil)

// document is the on-disk shape of the lockfile.
type document struct {
	SHA     string               `json:"sha"`
	Sources map[string]entryJSON `json:"sources"`
}

type entryJSON struct {
	LockedVersion string `json:"locked_version"`
	Path          string `json:"path,omitempty"`
}

// Store implements ports.LockfileStore using JSON files.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the lockfile at path. A missing or blank file is an empty lockfile.
func (s *Store) Load(path string) (*domain.Lockfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path = filepath.Clean(path)

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewLockfile(path, "", nil)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read lockfile"), "path", path)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return domain.NewLockfile(path, "", nil)
	}

	var doc document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrLockfileCorrupt, err.Error()), "path", path)
	}

	if doc.SHA == "" && len(doc.Sources) > 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrLockfileCorrupt, "sources recorded without a sha"), "path", path)
	}

	sources := make([]domain.LockedSource, 0, len(doc.Sources))
	for name, entry := range doc.Sources {
		sources = append(sources, domain.LockedSource{
			Name:          domain.NewInternedString(name),
			LockedVersion: entry.LockedVersion,
			Path:          entry.Path,
		})
	}

	return domain.NewLockfile(path, doc.SHA, sources)
}

// Save writes lock to its path through a temporary file renamed into place.
func (s *Store) Save(lock *domain.Lockfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := document{
		SHA:     lock.Fingerprint,
		Sources: make(map[string]entryJSON, len(lock.Sources)),
	}
	for _, src := range lock.Sources {
		doc.Sources[src.Name.String()] = entryJSON{
			LockedVersion: src.LockedVersion,
			Path:          src.Path,
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal lockfile")
	}
	data = append(data, '\n')

	path := filepath.Clean(lock.Path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for lockfile"), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temporary lockfile"), "path", dir)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // Gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, "failed to write lockfile"), "path", tmpName)
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, "failed to set lockfile permissions"), "path", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close lockfile"), "path", tmpName)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace lockfile"), "path", path)
	}
	return nil
}

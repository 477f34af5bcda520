package ports

import "go.trai.ch/shelf/internal/core/domain"

// LockfileStore defines the interface for persisting the lockfile.
//
//go:generate mockgen -source=lockfile_store.go -destination=mocks/mock_lockfile_store.go -package=mocks
type LockfileStore interface {
	// Load reads the lockfile at path. A missing file yields an empty lockfile.
	Load(path string) (*domain.Lockfile, error)
	// Save writes the lockfile to its path.
	Save(lock *domain.Lockfile) error
}

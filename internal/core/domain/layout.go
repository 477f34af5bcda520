package domain

import (
	"os"
	"path/filepath"
)

const (
	// ShelfDirName is the name of the per-user shelf directory.
	ShelfDirName = ".shelf"

	// CookbooksDirName is the name of the cookbook store directory inside the shelf.
	CookbooksDirName = "cookbooks"

	// ManifestFileName is the name of the manifest file.
	ManifestFileName = "Shelffile"

	// LockfileName is the name of the lockfile written next to the manifest.
	LockfileName = "Shelffile.lock"

	// IgnoreFileName is the name of the file listing vendor exclusions.
	IgnoreFileName = "chefignore"

	// MetadataFileName is the name of the cookbook metadata file.
	MetadataFileName = "metadata.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultShelfPath returns the shelf directory under the user's home,
// or a relative .shelf when no home directory is known.
func DefaultShelfPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ShelfDirName
	}
	return filepath.Join(home, ShelfDirName)
}

// LockfilePath returns the lockfile location for a manifest path.
func LockfilePath(manifestPath string) string {
	return filepath.Join(filepath.Dir(manifestPath), LockfileName)
}

// IgnoreFileCandidates returns the ignore file locations checked, in order, for a working directory.
func IgnoreFileCandidates(cwd string) []string {
	return []string{
		filepath.Join(cwd, IgnoreFileName),
		filepath.Join(cwd, CookbooksDirName, IgnoreFileName),
	}
}

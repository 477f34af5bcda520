package domain

import "path/filepath"

// Settings holds process-wide configuration read from the environment.
type Settings struct {
	// ShelfPath is the shelf directory holding the cookbook store.
	ShelfPath string
	LogLevel  LogLevel
	// Jobs bounds how many cookbooks are staged concurrently when vendoring.
	Jobs int
}

// CookbookStorePath returns the cookbook store directory.
func (s Settings) CookbookStorePath() string {
	return filepath.Join(s.ShelfPath, CookbooksDirName)
}

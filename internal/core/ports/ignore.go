package ports

// IgnoreFilter removes paths matched by ignore patterns.
//
//go:generate mockgen -source=ignore.go -destination=mocks/mock_ignore.go -package=mocks
type IgnoreFilter interface {
	// RemoveIgnoresFrom returns paths without the ignored entries, preserving order.
	RemoveIgnoresFrom(paths []string) []string
}

// IgnoreLoader finds and parses ignore files.
type IgnoreLoader interface {
	// Locate returns the first ignore file that exists for the working directory cwd.
	Locate(cwd string) (string, bool)
	Load(path string) (IgnoreFilter, error)
}

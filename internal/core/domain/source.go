package domain

import "slices"

// DefaultGroup is the group assigned to sources that declare none.
const DefaultGroup = "default"

// Source is a cookbook declared in the manifest.
type Source struct {
	Name       InternedString
	Constraint Constraint
	// CookbookName is the directory name used when vendoring. Defaults to Name.
	CookbookName string
	// Path is a local location for the cookbook. Empty means the shelf store.
	Path   string
	Groups []string
}

// NewSource creates a Source with defaults applied.
func NewSource(name string, constraint Constraint) Source {
	return Source{
		Name:         NewInternedString(name),
		Constraint:   constraint,
		CookbookName: name,
		Groups:       []string{DefaultGroup},
	}
}

// DirName returns the name of the directory the cookbook is vendored into.
func (s Source) DirName() string {
	if s.CookbookName != "" {
		return s.CookbookName
	}
	return s.Name.String()
}

// InAnyGroup reports whether the source belongs to at least one of groups.
func (s Source) InAnyGroup(groups []string) bool {
	own := s.Groups
	if len(own) == 0 {
		own = []string{DefaultGroup}
	}
	for _, g := range groups {
		if slices.Contains(own, g) {
			return true
		}
	}
	return false
}

// ResolvedSource is a Source bound to a concrete version and a local directory.
type ResolvedSource struct {
	Source
	Version string
	// Dir is the directory holding the cookbook files.
	Dir string
	// Dependencies lists the names of the cookbooks this one depends on.
	Dependencies []InternedString
}

// Lock returns the lockfile entry recording this resolution.
func (r ResolvedSource) Lock() LockedSource {
	return LockedSource{
		Name:          r.Name,
		LockedVersion: r.Version,
		Path:          r.Path,
	}
}

// LockedSource is the lockfile entry of a previously resolved cookbook.
type LockedSource struct {
	Name          InternedString
	LockedVersion string
	// Path is kept for sources that were declared with a local location.
	Path string
}

package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Lockfile records the fingerprint of the manifest it was produced from and
// the exact versions chosen for it.
type Lockfile struct {
	Path        string
	Fingerprint string
	Sources     []LockedSource
}

// NewLockfile builds a Lockfile and checks that its entries are well formed.
func NewLockfile(path, fingerprint string, sources []LockedSource) (*Lockfile, error) {
	seen := make(map[InternedString]struct{}, len(sources))
	for _, src := range sources {
		if src.Name.String() == "" {
			return nil, zerr.With(zerr.Wrap(ErrLockfileCorrupt, "entry without a name"), "path", path)
		}
		if _, ok := seen[src.Name]; ok {
			return nil, zerr.With(zerr.With(zerr.Wrap(ErrLockfileCorrupt, "duplicate entry"), "path", path), "source", src.Name.String())
		}
		if !ValidVersion(src.LockedVersion) {
			err := zerr.With(zerr.Wrap(ErrLockfileCorrupt, "invalid locked version"), "path", path)
			err = zerr.With(err, "source", src.Name.String())
			return nil, zerr.With(err, "locked_version", src.LockedVersion)
		}
		seen[src.Name] = struct{}{}
	}

	l := &Lockfile{Path: path, Fingerprint: fingerprint, Sources: slices.Clone(sources)}
	l.sort()
	return l, nil
}

// Find returns the locked entry for name.
func (l *Lockfile) Find(name InternedString) (LockedSource, bool) {
	for _, src := range l.Sources {
		if src.Name == name {
			return src, true
		}
	}
	return LockedSource{}, false
}

// Update replaces the recorded entries with the given resolution.
func (l *Lockfile) Update(resolved []ResolvedSource) {
	sources := make([]LockedSource, 0, len(resolved))
	for _, r := range resolved {
		sources = append(sources, r.Lock())
	}
	l.Sources = sources
	l.sort()
}

func (l *Lockfile) sort() {
	slices.SortFunc(l.Sources, func(a, b LockedSource) int {
		return strings.Compare(a.Name.String(), b.Name.String())
	})
}

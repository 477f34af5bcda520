package domain

import "go.trai.ch/zerr"

// Manifest is the parsed Shelffile.
type Manifest struct {
	Path string
	// Fingerprint is an opaque digest of the manifest content.
	Fingerprint string
	Sources     []Source
}

// NewManifest builds a Manifest and rejects duplicate source names.
func NewManifest(path, fingerprint string, sources []Source) (*Manifest, error) {
	seen := make(map[InternedString]struct{}, len(sources))
	for _, src := range sources {
		if _, ok := seen[src.Name]; ok {
			return nil, zerr.With(zerr.Wrap(ErrDuplicateSource, "manifest declares a cookbook twice"), "source", src.Name.String())
		}
		seen[src.Name] = struct{}{}
	}
	return &Manifest{
		Path:        path,
		Fingerprint: fingerprint,
		Sources:     sources,
	}, nil
}

// Find returns the declared source with the given name.
func (m *Manifest) Find(name InternedString) (Source, bool) {
	for _, src := range m.Sources {
		if src.Name == name {
			return src, true
		}
	}
	return Source{}, false
}

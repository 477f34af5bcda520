package domain

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// InstallOptions configures a single install.
type InstallOptions struct {
	// Path is the vendor destination. Empty disables vendoring.
	Path string
	// Manifest overrides the Shelffile location.
	Manifest string
	// Only restricts vendoring to sources in these groups.
	Only []string
	// Except excludes sources in these groups from vendoring.
	Except []string
}

// Validate checks the options for combinations that cannot be honoured.
func (o InstallOptions) Validate() error {
	if len(o.Only) > 0 && len(o.Except) > 0 {
		return zerr.Wrap(ErrInvalidOptions, "only and except cannot be combined")
	}
	if strings.ContainsRune(o.Path, 0) {
		return zerr.With(zerr.Wrap(ErrInvalidOptions, "vendor path contains a NUL byte"), "path", o.Path)
	}
	if o.Path != "" && filepath.Clean(o.Path) == "." {
		return zerr.With(zerr.Wrap(ErrInvalidOptions, "vendor path cannot be the working directory"), "path", o.Path)
	}
	for _, g := range slices.Concat(o.Only, o.Except) {
		if strings.TrimSpace(g) == "" {
			return zerr.Wrap(ErrInvalidOptions, "group names cannot be empty")
		}
	}
	return nil
}

// GuardVendorPath returns dest as an absolute path, rejecting it when it is
// or contains one of the protected directories. Promoting a vendor export
// replaces dest wholesale, so none of them may live inside it.
func GuardVendorPath(dest string, protected ...string) (string, error) {
	abs, err := filepath.Abs(dest)
	if err != nil {
		return "", zerr.With(zerr.Wrap(ErrInvalidOptions, err.Error()), "path", dest)
	}

	for _, dir := range protected {
		if dir == "" {
			continue
		}
		dirAbs, err := filepath.Abs(dir)
		if err != nil {
			return "", zerr.With(zerr.Wrap(ErrInvalidOptions, err.Error()), "path", dir)
		}
		if contains(resolve(abs), resolve(dirAbs)) {
			err := zerr.Wrap(ErrInvalidOptions, "vendor path would replace a directory shelf depends on")
			return "", zerr.With(zerr.With(err, "path", dest), "protected", dirAbs)
		}
	}
	return abs, nil
}

// resolve evaluates symlinks along the longest existing prefix of p.
func resolve(p string) string {
	if r, err := filepath.EvalSymlinks(p); err == nil {
		return r
	}
	parent := filepath.Dir(p)
	if parent == p {
		return p
	}
	return filepath.Join(resolve(parent), filepath.Base(p))
}

// contains reports whether child is parent or lies beneath it.
func contains(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// Selects reports whether a declared source is vendored under these options.
func (o InstallOptions) Selects(src Source) bool {
	switch {
	case len(o.Only) > 0:
		return src.InAnyGroup(o.Only)
	case len(o.Except) > 0:
		return !src.InAnyGroup(o.Except)
	default:
		return true
	}
}

package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrOutdatedSource is returned when a locked version no longer satisfies
	// the constraint declared for its cookbook.
	ErrOutdatedSource = zerr.New("locked version does not satisfy the declared constraint")

	// ErrResolutionFailed is returned when the resolver cannot produce a
	// consistent set of versions.
	ErrResolutionFailed = zerr.New("dependency resolution failed")

	// ErrInvalidOptions is returned when install options are malformed.
	ErrInvalidOptions = zerr.New("invalid install options")

	// ErrShelfDirectory is returned when the shelf directory cannot be prepared.
	ErrShelfDirectory = zerr.New("shelf directory is not usable")

	// ErrManifestNotFound is returned when no manifest exists at the expected path.
	ErrManifestNotFound = zerr.New("manifest not found")

	// ErrManifestEmpty is returned when the manifest has no content.
	ErrManifestEmpty = zerr.New("manifest is empty")

	// ErrManifestInvalid is returned when the manifest cannot be parsed.
	ErrManifestInvalid = zerr.New("manifest is invalid")

	// ErrDuplicateSource is returned when two sources share a name.
	ErrDuplicateSource = zerr.New("duplicate source")

	// ErrInvalidConstraint is returned when a version constraint cannot be parsed.
	ErrInvalidConstraint = zerr.New("invalid version constraint")

	// ErrLockfileCorrupt is returned when the lockfile does not have the expected shape.
	ErrLockfileCorrupt = zerr.New("lockfile is corrupt")

	// ErrVendorFailed is returned when vendoring cookbooks to a directory fails.
	ErrVendorFailed = zerr.New("vendoring failed")

	// ErrSourcePathMissing is returned when a resolved source has no location to copy from.
	ErrSourcePathMissing = zerr.New("resolved source has no path")
)

// OutdatedSourceError reports the cookbook whose locked version violates its constraint.
type OutdatedSourceError struct {
	Name          string
	Constraint    string
	LockedVersion string
}

// NewOutdatedSourceError builds an OutdatedSourceError for the given source
// and lock, carrying the same fields as log metadata.
func NewOutdatedSourceError(src Source, locked LockedSource) error {
	err := &OutdatedSourceError{
		Name:          src.Name.String(),
		Constraint:    src.Constraint.String(),
		LockedVersion: locked.LockedVersion,
	}
	return zerr.With(zerr.With(zerr.With(err,
		"source", err.Name),
		"constraint", err.Constraint),
		"locked_version", err.LockedVersion)
}

func (e *OutdatedSourceError) Error() string {
	return fmt.Sprintf("%s: %s is locked at %s, which does not satisfy %q",
		ErrOutdatedSource.Error(), e.Name, e.LockedVersion, e.Constraint)
}

// Unwrap lets errors.Is match ErrOutdatedSource.
func (e *OutdatedSourceError) Unwrap() error {
	return ErrOutdatedSource
}

// VendorError reports a failed vendoring step and keeps its cause.
type VendorError struct {
	Msg  string
	Path string
	Err  error
}

// NewVendorError builds a VendorError and attaches path as log metadata.
func NewVendorError(msg, path string, err error) error {
	return zerr.With(&VendorError{Msg: msg, Path: path, Err: err}, "path", path)
}

func (e *VendorError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrVendorFailed.Error(), e.Msg)
	}
	return fmt.Sprintf("%s: %s: %v", ErrVendorFailed.Error(), e.Msg, e.Err)
}

// Is lets errors.Is match ErrVendorFailed.
func (e *VendorError) Is(target error) bool {
	return target == ErrVendorFailed
}

func (e *VendorError) Unwrap() error {
	return e.Err
}

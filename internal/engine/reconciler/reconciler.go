// Package reconciler decides which cookbook versions an install uses by
// comparing the manifest with its lockfile.
package reconciler

import (
	"context"

	"go.trai.ch/shelf/internal/core/domain"
	"go.trai.ch/shelf/internal/core/ports"
	"go.trai.ch/zerr"
)

// Reconciler compares manifest and lockfile fingerprints and resolves accordingly.
// It never writes the lockfile.
type Reconciler struct {
	resolver ports.Resolver
	logger   ports.Logger
}

// New creates a Reconciler.
func New(resolver ports.Resolver, logger ports.Logger) *Reconciler {
	return &Reconciler{resolver: resolver, logger: logger}
}

// Reconcile returns the plan the lockfile must be updated with.
//
// When the fingerprints match, the locked versions are resolved as exact pins.
// Otherwise the manifest is resolved afresh and every resolved cookbook that
// was locked before must still accept its locked version; the first one that
// does not yield a *domain.OutdatedSourceError.
func (r *Reconciler) Reconcile(ctx context.Context, manifest *domain.Manifest, lock *domain.Lockfile) (*domain.Plan, error) {
	var (
		resolved []domain.ResolvedSource
		err      error
	)

	changed := manifest.Fingerprint != lock.Fingerprint
	if changed {
		r.logger.Debug("manifest changed since the lockfile was written, resolving")
		resolved, err = r.resolveChanged(ctx, manifest, lock)
	} else {
		r.logger.Debug("manifest unchanged, resolving locked versions")
		resolved, err = r.resolveUnchanged(ctx, manifest, lock)
	}
	if err != nil {
		return nil, err
	}

	plan := &domain.Plan{
		Changed:     changed,
		Fingerprint: manifest.Fingerprint,
		Sources:     resolved,
		Diff:        domain.ComputeDiff(lock, resolved),
	}
	r.logDiff(plan.Diff)
	return plan, nil
}

func (r *Reconciler) resolveUnchanged(ctx context.Context, manifest *domain.Manifest, lock *domain.Lockfile) ([]domain.ResolvedSource, error) {
	sources, err := PinnedSources(manifest, lock)
	if err != nil {
		return nil, err
	}
	return r.resolver.Resolve(ctx, sources)
}

func (r *Reconciler) resolveChanged(ctx context.Context, manifest *domain.Manifest, lock *domain.Lockfile) ([]domain.ResolvedSource, error) {
	resolved, err := r.resolver.Resolve(ctx, manifest.Sources)
	if err != nil {
		return nil, err
	}

	for _, src := range resolved {
		locked, ok := lock.Find(src.Name)
		if !ok {
			continue
		}
		if !src.Constraint.Satisfies(locked.LockedVersion) {
			return nil, domain.NewOutdatedSourceError(src.Source, locked)
		}
	}
	return resolved, nil
}

// PinnedSources turns every locked entry into a source constrained to its
// locked version. Names still declared in the manifest keep their declared
// location and vendor name.
func PinnedSources(manifest *domain.Manifest, lock *domain.Lockfile) ([]domain.Source, error) {
	sources := make([]domain.Source, 0, len(lock.Sources))
	for _, locked := range lock.Sources {
		pin, err := domain.ExactConstraint(locked.LockedVersion)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrLockfileCorrupt, err.Error()), "source", locked.Name.String())
		}

		src, declared := manifest.Find(locked.Name)
		if !declared {
			src = domain.NewSource(locked.Name.String(), pin)
			src.Path = locked.Path
		}
		src.Constraint = pin
		sources = append(sources, src)
	}
	return sources, nil
}

func (r *Reconciler) logDiff(d domain.Diff) {
	for _, line := range d.Summary() {
		r.logger.Info(line)
	}
}

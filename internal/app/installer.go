package app

import (
	"context"
	"fmt"

	"go.trai.ch/shelf/internal/core/domain"
	"go.trai.ch/zerr"
)

// Installer runs one install over a loaded manifest and lockfile.
type Installer struct {
	app      *App
	manifest *domain.Manifest
	lock     *domain.Lockfile
	opts     domain.InstallOptions
}

// NewInstaller binds a manifest, its lockfile and options to the app's collaborators.
func (a *App) NewInstaller(manifest *domain.Manifest, lock *domain.Lockfile, opts domain.InstallOptions) *Installer {
	return &Installer{
		app:      a,
		manifest: manifest,
		lock:     lock,
		opts:     opts,
	}
}

// Install reconciles, persists the lockfile and vendors when a path was given.
// The lockfile is saved only after reconciliation succeeded, and vendoring
// starts only after the lockfile was saved.
func (i *Installer) Install(ctx context.Context) (*domain.InstallResult, error) {
	plan, err := i.reconcile(ctx)
	if err != nil {
		return nil, err
	}

	i.lock.Update(plan.Sources)
	i.lock.Fingerprint = plan.Fingerprint
	if err := i.app.store.Save(i.lock); err != nil {
		return nil, zerr.Wrap(err, "failed to save lockfile")
	}
	i.app.logger.Debug(fmt.Sprintf("lockfile written to %s", i.lock.Path))

	result := &domain.InstallResult{Plan: plan}
	if i.opts.Path == "" {
		return result, nil
	}

	result.VendorPath, err = i.vendor(ctx, plan)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (i *Installer) reconcile(ctx context.Context) (*domain.Plan, error) {
	ctx, vertex := i.app.telemetry.Record(ctx, "reconcile")
	plan, err := i.app.reconciler.Reconcile(ctx, i.manifest, i.lock)
	if err == nil {
		for _, line := range plan.Diff.Summary() {
			vertex.Log(domain.LogLevelInfo, line)
		}
		if !plan.Changed {
			vertex.Cached()
		}
	}
	vertex.Complete(err)
	return plan, err
}

func (i *Installer) vendor(ctx context.Context, plan *domain.Plan) (string, error) {
	selected := SelectForVendor(i.manifest, i.opts, plan.Sources)

	ctx, vertex := i.app.telemetry.Record(ctx, "vendor")
	for _, src := range selected {
		vertex.Log(domain.LogLevelInfo, fmt.Sprintf("%s (%s)", src.Name, src.Version))
	}
	path, err := i.app.vendorer.Vendor(ctx, i.opts.Path, selected)
	vertex.Complete(err)
	if err != nil {
		return "", err
	}

	i.app.logger.Info(fmt.Sprintf("vendored %d cookbook(s) into %s", len(selected), path))
	return path, nil
}

// SelectForVendor returns the resolved sources to vendor under opts: the
// declared sources the group filter selects plus everything they depend on.
// Without a group filter every resolved source is returned.
func SelectForVendor(manifest *domain.Manifest, opts domain.InstallOptions, resolved []domain.ResolvedSource) []domain.ResolvedSource {
	if len(opts.Only) == 0 && len(opts.Except) == 0 {
		return resolved
	}

	byName := make(map[domain.InternedString]domain.ResolvedSource, len(resolved))
	for _, r := range resolved {
		byName[r.Name] = r
	}

	var queue []domain.InternedString
	for _, src := range manifest.Sources {
		if opts.Selects(src) {
			queue = append(queue, src.Name)
		}
	}

	keep := make(map[domain.InternedString]struct{}, len(resolved))
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if _, seen := keep[name]; seen {
			continue
		}
		r, ok := byName[name]
		if !ok {
			continue
		}
		keep[name] = struct{}{}
		queue = append(queue, r.Dependencies...)
	}

	out := make([]domain.ResolvedSource, 0, len(keep))
	for _, r := range resolved {
		if _, ok := keep[r.Name]; ok {
			out = append(out, r)
		}
	}
	return out
}

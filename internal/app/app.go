// Package app implements the application layer for shelf.
package app

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/shelf/internal/core/domain"
	"go.trai.ch/shelf/internal/core/ports"
	"go.trai.ch/shelf/internal/engine/reconciler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader     ports.ManifestLoader
	store      ports.LockfileStore
	reconciler *reconciler.Reconciler
	vendorer   ports.Vendorer
	logger     ports.Logger
	telemetry  ports.Telemetry
	settings   domain.Settings
}

// New creates a new App instance.
func New(
	loader ports.ManifestLoader,
	store ports.LockfileStore,
	rec *reconciler.Reconciler,
	vendorer ports.Vendorer,
	logger ports.Logger,
	telemetry ports.Telemetry,
	settings domain.Settings,
) *App {
	return &App{
		loader:     loader,
		store:      store,
		reconciler: rec,
		vendorer:   vendorer,
		logger:     logger,
		telemetry:  telemetry,
		settings:   settings,
	}
}

// Install validates the environment, loads the manifest and its lockfile and
// runs an Installer over them.
func (a *App) Install(ctx context.Context, opts domain.InstallOptions) (*domain.InstallResult, error) {
	// 1. Options
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	// 2. Shelf directory
	if err := a.ensureShelfDirectory(); err != nil {
		return nil, err
	}

	// 3. Manifest
	manifestPath, err := resolveManifestPath(opts.Manifest)
	if err != nil {
		return nil, err
	}
	manifest, err := a.loader.Load(manifestPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load manifest")
	}

	// 4. Vendor destination
	if opts.Path != "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to determine working directory")
		}
		if _, err := domain.GuardVendorPath(opts.Path, cwd, filepath.Dir(manifest.Path), a.settings.ShelfPath); err != nil {
			return nil, err
		}
	}

	// 5. Lockfile
	lock, err := a.store.Load(domain.LockfilePath(manifest.Path))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load lockfile")
	}

	return a.NewInstaller(manifest, lock, opts).Install(ctx)
}

// SetLogLevel changes the logger level when the logger supports it.
func (a *App) SetLogLevel(level domain.LogLevel) {
	if l, ok := a.logger.(interface{ SetLevel(domain.LogLevel) }); ok {
		l.SetLevel(level)
	}
}

// Close flushes telemetry.
func (a *App) Close() error {
	return a.telemetry.Close()
}

func (a *App) ensureShelfDirectory() error {
	store := a.settings.CookbookStorePath()
	if err := os.MkdirAll(store, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrShelfDirectory, err.Error()), "path", store)
	}
	return nil
}

func resolveManifestPath(path string) (string, error) {
	if path == "" {
		path = domain.ManifestFileName
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve manifest path"), "path", path)
	}
	return abs, nil
}

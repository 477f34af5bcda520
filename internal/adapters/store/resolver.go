// Package store resolves cookbook sources against the local cookbook store.
package store

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/shelf/internal/core/domain"
	"go.trai.ch/shelf/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Resolver = (*Resolver)(nil)

// Resolver implements ports.Resolver over a directory of unpacked cookbooks,
// one per <name>-<version> subdirectory.
type Resolver struct {
	root   string
	logger ports.Logger
}

// NewResolver creates a Resolver reading the store at root.
func NewResolver(root string, logger ports.Logger) *Resolver {
	return &Resolver{root: root, logger: logger}
}

type candidate struct {
	version string
	dir     string
	deps    map[string]string
}

type request struct {
	source     domain.Source
	requiredBy string
}

// Resolve picks, breadth first, the highest available version of every
// declared source and of every dependency they pull in.
func (r *Resolver) Resolve(ctx context.Context, sources []domain.Source) ([]domain.ResolvedSource, error) {
	index, err := r.index()
	if err != nil {
		return nil, err
	}

	queue := make([]request, 0, len(sources))
	for _, src := range sources {
		queue = append(queue, request{source: src})
	}

	chosen := make(map[domain.InternedString]int)
	var resolved []domain.ResolvedSource

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, zerr.Wrap(err, "resolution cancelled")
		}

		req := queue[0]
		queue = queue[1:]

		if i, ok := chosen[req.source.Name]; ok {
			if !req.source.Constraint.Satisfies(resolved[i].Version) {
				return nil, conflict(req, resolved[i].Version)
			}
			continue
		}

		cand, err := r.pick(req.source, index)
		if err != nil {
			return nil, err
		}

		res := domain.ResolvedSource{
			Source:  req.source,
			Version: cand.version,
			Dir:     cand.dir,
		}

		depNames := make([]string, 0, len(cand.deps))
		for name := range cand.deps {
			depNames = append(depNames, name)
		}
		slices.Sort(depNames)

		res.Dependencies = domain.NewInternedStrings(depNames)

		for _, name := range depNames {
			constraint, err := domain.ParseConstraint(cand.deps[name])
			if err != nil {
				return nil, zerr.With(zerr.Wrap(domain.ErrResolutionFailed, err.Error()), "source", req.source.Name.String())
			}
			queue = append(queue, request{
				source:     domain.NewSource(name, constraint),
				requiredBy: req.source.Name.String(),
			})
		}

		r.logger.Debug(fmt.Sprintf("resolved %s %s", req.source.Name, cand.version))
		chosen[req.source.Name] = len(resolved)
		resolved = append(resolved, res)
	}

	return resolved, nil
}

func (r *Resolver) pick(src domain.Source, index map[string][]candidate) (candidate, error) {
	name := src.Name.String()

	if src.Path != "" {
		md, err := ReadMetadata(src.Path)
		if err != nil {
			return candidate{}, zerr.With(zerr.Wrap(domain.ErrResolutionFailed, err.Error()), "source", name)
		}
		if md.Name != name {
			r.logger.Warn(fmt.Sprintf("cookbook at %s is named %s, expected %s", src.Path, md.Name, name))
		}
		if !src.Constraint.Satisfies(md.Version) {
			return candidate{}, unsatisfied(src)
		}
		return candidate{version: md.Version, dir: src.Path, deps: md.Dependencies}, nil
	}

	candidates, ok := index[name]
	if !ok {
		err := zerr.Wrap(domain.ErrResolutionFailed, "cookbook not found in store")
		return candidate{}, zerr.With(zerr.With(err, "source", name), "path", r.root)
	}

	for _, c := range candidates {
		if src.Constraint.Satisfies(c.version) {
			return c, nil
		}
	}
	return candidate{}, unsatisfied(src)
}

// index lists the store, newest version first for each cookbook.
func (r *Resolver) index() (map[string][]candidate, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return map[string][]candidate{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read cookbook store"), "path", r.root)
	}

	index := make(map[string][]candidate)
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		dir := filepath.Join(r.root, entry.Name())
		md, err := ReadMetadata(dir)
		if err != nil {
			r.logger.Warn(fmt.Sprintf("skipping %s: %v", dir, err))
			continue
		}
		index[md.Name] = append(index[md.Name], candidate{
			version: md.Version,
			dir:     dir,
			deps:    md.Dependencies,
		})
	}

	for name := range index {
		slices.SortFunc(index[name], func(a, b candidate) int {
			return domain.CompareVersions(b.version, a.version)
		})
	}
	return index, nil
}

func unsatisfied(src domain.Source) error {
	err := zerr.Wrap(domain.ErrResolutionFailed, "no version satisfies constraint")
	return zerr.With(zerr.With(err, "source", src.Name.String()), "constraint", src.Constraint.String())
}

func conflict(req request, version string) error {
	err := zerr.Wrap(domain.ErrResolutionFailed, "conflicting constraints")
	err = zerr.With(err, "source", req.source.Name.String())
	err = zerr.With(err, "constraint", req.source.Constraint.String())
	err = zerr.With(err, "required_by", req.requiredBy)
	return zerr.With(err, "version", version)
}

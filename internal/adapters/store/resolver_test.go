package store_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shelf/internal/adapters/store"
	"go.trai.ch/shelf/internal/core/domain"
	"go.trai.ch/shelf/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func addCookbook(t *testing.T, dir, name, version string, deps map[string]string) string {
	t.Helper()
	var b strings.Builder
	fmt.Fprintf(&b, "name: %s\nversion: %q\n", name, version)
	if len(deps) > 0 {
		b.WriteString("dependencies:\n")
		for dep, c := range deps {
			fmt.Fprintf(&b, "  %s: %q\n", dep, c)
		}
	}
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.MetadataFileName), []byte(b.String()), 0o600))
	return dir
}

func newStore(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	addCookbook(t, filepath.Join(root, "build-essential-1.1.0"), "build-essential", "1.1.0", nil)
	addCookbook(t, filepath.Join(root, "build-essential-1.1.4"), "build-essential", "1.1.4", nil)
	addCookbook(t, filepath.Join(root, "build-essential-1.2.0"), "build-essential", "1.2.0", nil)
	addCookbook(t, filepath.Join(root, "chef-client-0.0.4"), "chef-client", "0.0.4", map[string]string{"ohai": ">= 1.0.0"})
	addCookbook(t, filepath.Join(root, "ohai-1.0.0"), "ohai", "1.0.0", nil)
	return root
}

func newResolver(t *testing.T, root string) *store.Resolver {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return store.NewResolver(root, log)
}

func source(name, constraint string) domain.Source {
	return domain.NewSource(name, domain.MustParseConstraint(constraint))
}

func versions(resolved []domain.ResolvedSource) map[string]string {
	out := make(map[string]string, len(resolved))
	for _, r := range resolved {
		out[r.Name.String()] = r.Version
	}
	return out
}

func TestResolver_HighestSatisfyingWithDependencies(t *testing.T) {
	root := newStore(t)

	resolved, err := newResolver(t, root).Resolve(context.Background(), []domain.Source{
		source("build-essential", "~> 1.1.0"),
		source("chef-client", ">= 0.0.4"),
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"build-essential": "1.1.4",
		"chef-client":     "0.0.4",
		"ohai":            "1.0.0",
	}, versions(resolved))

	require.Len(t, resolved, 3)
	assert.Equal(t, "build-essential", resolved[0].Name.String())
	assert.Equal(t, filepath.Join(root, "build-essential-1.1.4"), resolved[0].Dir)
	assert.Equal(t, "chef-client", resolved[1].Name.String())
	assert.Equal(t, []domain.InternedString{domain.NewInternedString("ohai")}, resolved[1].Dependencies)
	assert.Equal(t, "ohai", resolved[2].Name.String())

	for _, r := range resolved {
		assert.True(t, r.Constraint.Satisfies(r.Version), r.Name.String())
	}
}

func TestResolver_ExactPin(t *testing.T) {
	resolved, err := newResolver(t, newStore(t)).Resolve(context.Background(), []domain.Source{
		source("build-essential", "= 1.1.0"),
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"build-essential": "1.1.0"}, versions(resolved))
}

func TestResolver_Conflict(t *testing.T) {
	root := newStore(t)
	addCookbook(t, filepath.Join(root, "nginx-2.0.0"), "nginx", "2.0.0", map[string]string{"build-essential": "~> 1.1.0"})

	_, err := newResolver(t, root).Resolve(context.Background(), []domain.Source{
		source("build-essential", "~> 1.2.0"),
		source("nginx", ""),
	})
	assert.ErrorIs(t, err, domain.ErrResolutionFailed)
}

func TestResolver_Unsatisfiable(t *testing.T) {
	_, err := newResolver(t, newStore(t)).Resolve(context.Background(), []domain.Source{
		source("build-essential", ">= 3.0.0"),
	})
	assert.ErrorIs(t, err, domain.ErrResolutionFailed)
}

func TestResolver_MissingCookbook(t *testing.T) {
	_, err := newResolver(t, filepath.Join(t.TempDir(), "empty")).Resolve(context.Background(), []domain.Source{
		source("apt", ""),
	})
	assert.ErrorIs(t, err, domain.ErrResolutionFailed)
}

func TestResolver_PathSource(t *testing.T) {
	root := newStore(t)
	local := addCookbook(t, filepath.Join(t.TempDir(), "my-app"), "my-app", "0.1.0", map[string]string{"build-essential": "~> 1.1"})

	src := source("my-app", "")
	src.Path = local

	resolved, err := newResolver(t, root).Resolve(context.Background(), []domain.Source{src})
	require.NoError(t, err)

	require.Len(t, resolved, 2)
	assert.Equal(t, local, resolved[0].Dir)
	assert.Equal(t, local, resolved[0].Path)
	assert.Equal(t, "0.1.0", resolved[0].Version)
	assert.Equal(t, "1.1.4", resolved[1].Version)
}

func TestResolver_SkipsBrokenEntries(t *testing.T) {
	root := newStore(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "broken-1.0.0"), 0o750))

	resolved, err := newResolver(t, root).Resolve(context.Background(), []domain.Source{source("ohai", "")})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"ohai": "1.0.0"}, versions(resolved))
}

func TestResolver_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newResolver(t, newStore(t)).Resolve(ctx, []domain.Source{source("ohai", "")})
	assert.ErrorIs(t, err, context.Canceled)
}

package reconciler_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shelf/internal/core/domain"
	"go.trai.ch/shelf/internal/core/ports/mocks"
	"go.trai.ch/shelf/internal/engine/reconciler"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func declared(name, constraint string) domain.Source {
	return domain.NewSource(name, domain.MustParseConstraint(constraint))
}

func resolvedFrom(src domain.Source, version string) domain.ResolvedSource {
	return domain.ResolvedSource{Source: src, Version: version, Dir: "/store/" + src.Name.String() + "-" + version}
}

func fixtures(t *testing.T, manifestSHA, lockSHA string) (*domain.Manifest, *domain.Lockfile) {
	t.Helper()
	m, err := domain.NewManifest("Shelffile", manifestSHA, []domain.Source{
		declared("build-essential", "~> 1.1.0"),
		declared("chef-client", ">= 0.0.4"),
	})
	require.NoError(t, err)

	l, err := domain.NewLockfile("Shelffile.lock", lockSHA, []domain.LockedSource{
		{Name: domain.NewInternedString("build-essential"), LockedVersion: "1.1.0"},
		{Name: domain.NewInternedString("chef-client"), LockedVersion: "0.0.4"},
	})
	require.NoError(t, err)
	return m, l
}

func newReconciler(ctrl *gomock.Controller) (*reconciler.Reconciler, *mocks.MockResolver) {
	resolver := mocks.NewMockResolver(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return reconciler.New(resolver, log), resolver
}

func TestReconcile_UnchangedUsesLockedVersions(t *testing.T) {
	ctrl := gomock.NewController(t)
	r, resolver := newReconciler(ctrl)
	m, l := fixtures(t, "abc123", "abc123")

	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sources []domain.Source) ([]domain.ResolvedSource, error) {
			require.Len(t, sources, 2)
			assert.Equal(t, "build-essential", sources[0].Name.String())
			assert.Equal(t, "= 1.1.0", sources[0].Constraint.String())
			assert.Equal(t, "chef-client", sources[1].Name.String())
			assert.Equal(t, "= 0.0.4", sources[1].Constraint.String())

			out := make([]domain.ResolvedSource, 0, len(sources))
			out = append(out, resolvedFrom(sources[0], "1.1.0"), resolvedFrom(sources[1], "0.0.4"))
			return out, nil
		}).Times(1)

	plan, err := r.Reconcile(context.Background(), m, l)
	require.NoError(t, err)

	assert.False(t, plan.Changed)
	assert.Equal(t, "abc123", plan.Fingerprint)
	assert.Len(t, plan.Sources, 2)
	assert.True(t, plan.Diff.Empty())
}

func TestReconcile_UnchangedResolvesLockedNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	r, resolver := newReconciler(ctrl)

	m, err := domain.NewManifest("Shelffile", "abc123", []domain.Source{declared("build-essential", "~> 1.1.0")})
	require.NoError(t, err)
	l, err := domain.NewLockfile("Shelffile.lock", "abc123", []domain.LockedSource{
		{Name: domain.NewInternedString("build-essential"), LockedVersion: "1.1.0"},
		{Name: domain.NewInternedString("ohai"), LockedVersion: "1.0.0", Path: "/src/ohai"},
	})
	require.NoError(t, err)

	var got []domain.Source
	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sources []domain.Source) ([]domain.ResolvedSource, error) {
			got = sources
			return []domain.ResolvedSource{resolvedFrom(sources[0], "1.1.0"), resolvedFrom(sources[1], "1.0.0")}, nil
		})

	_, err = r.Reconcile(context.Background(), m, l)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "ohai", got[1].Name.String())
	assert.Equal(t, "/src/ohai", got[1].Path)
	assert.Equal(t, "= 1.0.0", got[1].Constraint.String())
}

func TestReconcile_ChangedSatisfiedLocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	r, resolver := newReconciler(ctrl)
	m, l := fixtures(t, "abc123", "def456")

	resolver.EXPECT().Resolve(gomock.Any(), m.Sources).Return([]domain.ResolvedSource{
		resolvedFrom(m.Sources[0], "1.1.3"),
		resolvedFrom(m.Sources[1], "0.0.4"),
	}, nil).Times(1)

	plan, err := r.Reconcile(context.Background(), m, l)
	require.NoError(t, err)

	assert.True(t, plan.Changed)
	assert.Equal(t, "abc123", plan.Fingerprint)
	assert.Equal(t, []string{"build-essential"}, plan.Diff.Updated)
	assert.Equal(t, []string{"chef-client"}, plan.Diff.Unchanged)
}

func TestReconcile_ChangedConflictingConstraint(t *testing.T) {
	ctrl := gomock.NewController(t)
	r, resolver := newReconciler(ctrl)
	_, l := fixtures(t, "", "def456")

	m, err := domain.NewManifest("Shelffile", "abc123", []domain.Source{
		declared("build-essential", "~> 2.0.0"),
		declared("chef-client", ">= 0.0.4"),
	})
	require.NoError(t, err)

	resolver.EXPECT().Resolve(gomock.Any(), m.Sources).Return([]domain.ResolvedSource{
		resolvedFrom(m.Sources[0], "2.0.1"),
		resolvedFrom(m.Sources[1], "0.0.4"),
	}, nil)

	plan, err := r.Reconcile(context.Background(), m, l)
	require.Error(t, err)
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, domain.ErrOutdatedSource)

	var outdated *domain.OutdatedSourceError
	require.True(t, errors.As(err, &outdated))
	assert.Equal(t, "build-essential", outdated.Name)
	assert.Equal(t, "1.1.0", outdated.LockedVersion)
	assert.Equal(t, "~> 2.0.0", outdated.Constraint)
}

func TestReconcile_ChangedUnlockedSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	r, resolver := newReconciler(ctrl)
	m, _ := fixtures(t, "abc123", "")

	empty, err := domain.NewLockfile("Shelffile.lock", "def456", nil)
	require.NoError(t, err)

	resolver.EXPECT().Resolve(gomock.Any(), m.Sources).Return([]domain.ResolvedSource{
		resolvedFrom(m.Sources[0], "1.1.4"),
		resolvedFrom(m.Sources[1], "3.0.0"),
	}, nil)

	plan, err := r.Reconcile(context.Background(), m, empty)
	require.NoError(t, err)

	assert.True(t, plan.Changed)
	assert.Equal(t, []string{"build-essential", "chef-client"}, plan.Diff.Added)
}

func TestReconcile_ResolverErrorPropagates(t *testing.T) {
	for _, tc := range []struct{ name, lockSHA string }{
		{"Unchanged", "abc123"},
		{"Changed", "def456"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			r, resolver := newReconciler(ctrl)
			m, l := fixtures(t, "abc123", tc.lockSHA)

			resolveErr := zerr.With(zerr.Wrap(domain.ErrResolutionFailed, "no version satisfies constraint"), "source", "chef-client")
			resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(nil, resolveErr)

			plan, err := r.Reconcile(context.Background(), m, l)
			assert.Nil(t, plan)
			assert.Same(t, resolveErr, err)
		})
	}
}

func TestPinnedSources_KeepsDeclaredLocation(t *testing.T) {
	src := declared("my-app", ">= 0.0.0")
	src.Path = "/work/my-app"
	src.CookbookName = "app"

	m, err := domain.NewManifest("Shelffile", "abc", []domain.Source{src})
	require.NoError(t, err)
	l, err := domain.NewLockfile("Shelffile.lock", "abc", []domain.LockedSource{
		{Name: domain.NewInternedString("my-app"), LockedVersion: "0.1.0", Path: "/old/my-app"},
	})
	require.NoError(t, err)

	pinned, err := reconciler.PinnedSources(m, l)
	require.NoError(t, err)

	require.Len(t, pinned, 1)
	assert.Equal(t, "/work/my-app", pinned[0].Path)
	assert.Equal(t, "app", pinned[0].DirName())
	assert.Equal(t, "= 0.1.0", pinned[0].Constraint.String())
}

package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shelf/cmd/shelf/commands"
	"go.trai.ch/shelf/internal/adapters/logger"
	"go.trai.ch/shelf/internal/adapters/telemetry"
	"go.trai.ch/shelf/internal/app"
	"go.trai.ch/shelf/internal/build"
	"go.trai.ch/shelf/internal/core/domain"
	"go.trai.ch/shelf/internal/core/ports"
	"go.trai.ch/shelf/internal/core/ports/mocks"
	"go.trai.ch/shelf/internal/engine/reconciler"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader   *mocks.MockManifestLoader
	store    *mocks.MockLockfileStore
	resolver *mocks.MockResolver
	vendorer *mocks.MockVendorer
}

func newApp(t *testing.T, log ports.Logger) (*app.App, *fixture) {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		loader:   mocks.NewMockManifestLoader(ctrl),
		store:    mocks.NewMockLockfileStore(ctrl),
		resolver: mocks.NewMockResolver(ctrl),
		vendorer: mocks.NewMockVendorer(ctrl),
	}
	if log == nil {
		quiet := mocks.NewMockLogger(ctrl)
		quiet.EXPECT().Debug(gomock.Any()).AnyTimes()
		quiet.EXPECT().Info(gomock.Any()).AnyTimes()
		log = quiet
	}
	a := app.New(f.loader, f.store, reconciler.New(f.resolver, log), f.vendorer, log,
		telemetry.NewNoOp(), domain.Settings{ShelfPath: t.TempDir(), Jobs: 1})
	return a, f
}

// expectFreshInstall sets up a manifest with one cookbook and no prior lock.
func (f *fixture) expectFreshInstall(t *testing.T) *domain.Manifest {
	t.Helper()
	src := domain.NewSource("build-essential", domain.MustParseConstraint("~> 1.1.0"))
	src.Groups = []string{"ops"}
	m, err := domain.NewManifest("/project/Shelffile", "abc123", []domain.Source{src})
	require.NoError(t, err)
	lock, err := domain.NewLockfile("/project/Shelffile.lock", "", nil)
	require.NoError(t, err)

	f.loader.EXPECT().Load(gomock.Any()).Return(m, nil)
	f.store.EXPECT().Load("/project/Shelffile.lock").Return(lock, nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), m.Sources).Return([]domain.ResolvedSource{
		{Source: src, Version: "1.1.4", Dir: "/store/build-essential-1.1.4"},
	}, nil)
	f.store.EXPECT().Save(lock).Return(nil)
	return m
}

func TestInstall_PrintsResolvedCookbooks(t *testing.T) {
	a, f := newApp(t, nil)
	f.expectFreshInstall(t)

	cli := commands.New(a)
	var out bytes.Buffer
	cli.SetOutput(&out)
	cli.SetArgs([]string{"install", "--shelffile", "/project/Shelffile"})

	require.NoError(t, cli.Execute(context.Background()))
	g := goldie.New(t)
	g.Assert(t, "install", out.Bytes())
}

func TestInstall_VendorFlags(t *testing.T) {
	a, f := newApp(t, nil)
	f.expectFreshInstall(t)
	f.vendorer.EXPECT().Vendor(gomock.Any(), "vendor/cookbooks", gomock.Len(1)).Return("/project/vendor/cookbooks", nil)

	cli := commands.New(a)
	var out bytes.Buffer
	cli.SetOutput(&out)
	cli.SetArgs([]string{"install", "-b", "/project/Shelffile", "--path", "vendor/cookbooks", "--only", "ops"})

	require.NoError(t, cli.Execute(context.Background()))
	g := goldie.New(t)
	g.Assert(t, "install_vendor", out.Bytes())
}

func TestInstall_ConflictingGroupFilters(t *testing.T) {
	a, _ := newApp(t, nil)

	cli := commands.New(a)
	cli.SetArgs([]string{"install", "--only", "ops", "--except", "test"})

	err := cli.Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidOptions)
}

func TestInstall_RejectsArguments(t *testing.T) {
	a, _ := newApp(t, nil)

	cli := commands.New(a)
	cli.SetArgs([]string{"install", "build-essential"})

	assert.Error(t, cli.Execute(context.Background()))
}

func TestInstall_Verbose(t *testing.T) {
	log := logger.New(domain.LogLevelInfo)
	var logs bytes.Buffer
	log.SetOutput(&logs)

	a, f := newApp(t, log)
	f.expectFreshInstall(t)

	cli := commands.New(a)
	cli.SetOutput(&bytes.Buffer{})
	cli.SetArgs([]string{"install", "--verbose", "--shelffile", "/project/Shelffile"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, logs.String(), "level=DEBUG")
	assert.Contains(t, logs.String(), "lockfile written to /project/Shelffile.lock")
}

func TestVersion(t *testing.T) {
	a, _ := newApp(t, nil)

	cli := commands.New(a)
	var out bytes.Buffer
	cli.SetOutput(&out)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "shelf version "+build.Version+"\n", out.String())
}

func TestRoot_Help(t *testing.T) {
	a, _ := newApp(t, nil)

	cli := commands.New(a)
	cli.SetOutput(&bytes.Buffer{})
	cli.SetArgs([]string{"--help"})

	assert.NoError(t, cli.Execute(context.Background()))
}

package app_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/equip/internal/app"
	"go.trai.ch/equip/internal/core/domain"
	"go.trai.ch/equip/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func snapshotFixture() *domain.Index {
	appID := domain.NewPackageID("app 0.1.0 (path+file:///ws/app)")
	libID := domain.NewPackageID("foo-bar 0.2.0 (registry+...)")
	devID := domain.NewPackageID("criterion 0.3.0 (registry+...)")

	packages := []*domain.Package{
		{
			ID:           appID,
			Name:         domain.NewInternedString("app"),
			Edition:      "2018",
			ManifestPath: domain.NewInternedString("/ws/app/Cargo.toml"),
			Targets: []domain.Target{
				{Kind: domain.TargetKindBin, Name: domain.NewInternedString("app"), SrcPath: domain.NewInternedString("/ws/app/src/main.rs")},
			},
			Dependencies: []domain.DeclaredDependency{
				{Name: domain.NewInternedString("foo-bar"), Kind: domain.DependencyKindNormal},
				{Name: domain.NewInternedString("criterion"), Kind: domain.DependencyKindDev},
			},
		},
		{
			ID:   libID,
			Name: domain.NewInternedString("foo-bar"),
			Targets: []domain.Target{
				{Kind: domain.TargetKindLib, Name: domain.NewInternedString("foo-bar"), SrcPath: domain.NewInternedString("/c/foo-bar/src/lib.rs")},
			},
		},
		{
			ID:   devID,
			Name: domain.NewInternedString("criterion"),
			Targets: []domain.Target{
				{Kind: domain.TargetKindLib, Name: domain.NewInternedString("criterion"), SrcPath: domain.NewInternedString("/c/criterion/src/lib.rs")},
			},
		},
	}
	nodes := []*domain.Node{
		{
			ID: appID,
			Deps: []domain.NodeDep{
				{Name: domain.NewInternedString("foo_bar"), Pkg: libID},
				{Name: domain.NewInternedString("criterion"), Pkg: devID, Kinds: []domain.DependencyKind{domain.DependencyKindDev}},
			},
			DepIDs: []domain.PackageID{libID, devID},
		},
		{ID: libID},
		{ID: devID},
	}
	return domain.NewIndex(packages, nodes, []domain.PackageID{appID}, "/ws", "/ws/target")
}

func TestApp_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	idx := snapshotFixture()

	meta := mocks.NewMockMetadataSource(ctrl)
	meta.EXPECT().LocateProject("/ws/app/src").Return("/ws/app/Cargo.toml", nil)
	meta.EXPECT().Query(gomock.Any(), "/ws/app/Cargo.toml", "/ws/app/src").Return(idx, nil)

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("/ws").Return(domain.ToolConfig{}, nil)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()) // app has no package.metadata.equip

	a := app.New(logger, meta, loader, nil)
	report, err := a.Resolve(context.Background(), "/ws/app/src", app.SelectOptions{})
	require.NoError(t, err)

	assert.Equal(t, "app", report.BinTarget)
	assert.Equal(t, "/ws/app/src/main.rs", report.SrcPath)
	assert.Equal(t, "app", report.Package.Name.String())

	// The dev-only edge is not eligible.
	require.Len(t, report.Dependencies, 1)
	assert.Equal(t, app.ResolvedDependency{
		ExternName: "foo_bar",
		Package:    "foo-bar",
		LibTarget:  "foo-bar",
	}, report.Dependencies[0])
}

func TestApp_Resolve_RenamedDependencyWithoutLibTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	appID := domain.NewPackageID("app 0.1.0 (path+file:///ws/app)")
	macroID := domain.NewPackageID("serde_derive 1.0.0 (registry+...)")

	packages := []*domain.Package{
		{
			ID:           appID,
			Name:         domain.NewInternedString("app"),
			Edition:      "2018",
			ManifestPath: domain.NewInternedString("/ws/app/Cargo.toml"),
			Targets: []domain.Target{
				{Kind: domain.TargetKindBin, Name: domain.NewInternedString("app"), SrcPath: domain.NewInternedString("/ws/app/src/main.rs")},
			},
			Dependencies: []domain.DeclaredDependency{
				{Name: domain.NewInternedString("serde_derive"), Rename: domain.NewInternedString("derive_alias"), Kind: domain.DependencyKindNormal},
			},
		},
		{
			ID:   macroID,
			Name: domain.NewInternedString("serde_derive"),
			Targets: []domain.Target{
				{Kind: domain.TargetKindOther, Name: domain.NewInternedString("serde_derive"), SrcPath: domain.NewInternedString("/c/serde_derive/src/lib.rs")},
			},
		},
	}
	nodes := []*domain.Node{
		{
			ID: appID,
			Deps: []domain.NodeDep{
				{Name: domain.NewInternedString("derive_alias"), Pkg: macroID},
			},
			DepIDs: []domain.PackageID{macroID},
		},
		{ID: macroID},
	}
	idx := domain.NewIndex(packages, nodes, []domain.PackageID{appID}, "/ws", "/ws/target")

	meta := mocks.NewMockMetadataSource(ctrl)
	meta.EXPECT().LocateProject(gomock.Any()).Return("/ws/app/Cargo.toml", nil)
	meta.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).Return(idx, nil)

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("/ws").Return(domain.ToolConfig{}, nil)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any())

	a := app.New(logger, meta, loader, nil)
	report, err := a.Resolve(context.Background(), "/ws/app", app.SelectOptions{})
	require.NoError(t, err)

	// The rename resolves without a lib target on the dependency.
	require.Len(t, report.Dependencies, 1)
	assert.Equal(t, app.ResolvedDependency{
		ExternName: "derive_alias",
		Package:    "serde_derive",
		LibTarget:  "",
	}, report.Dependencies[0])
}

func TestApp_Resolve_ConfigPreselectsBin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	idx := snapshotFixture()

	meta := mocks.NewMockMetadataSource(ctrl)
	meta.EXPECT().LocateProject(gomock.Any()).Return("/ws/app/Cargo.toml", nil)
	meta.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).Return(idx, nil)

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("/ws").Return(domain.ToolConfig{Bin: "app"}, nil)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any())

	a := app.New(logger, meta, loader, nil)
	report, err := a.Resolve(context.Background(), "/ws/app", app.SelectOptions{})
	require.NoError(t, err)
	assert.Equal(t, "app", report.BinTarget)
}

func TestApp_Resolve_NoProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	meta := mocks.NewMockMetadataSource(ctrl)
	meta.EXPECT().LocateProject(gomock.Any()).Return("", domain.ErrProjectNotFound)

	a := app.New(mocks.NewMockLogger(ctrl), meta, mocks.NewMockConfigLoader(ctrl), nil)
	_, err := a.Resolve(context.Background(), "/nowhere", app.SelectOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrProjectNotFound))
}

func TestApp_Verify_DisabledByConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	idx := snapshotFixture()

	meta := mocks.NewMockMetadataSource(ctrl)
	meta.EXPECT().LocateProject(gomock.Any()).Return("/ws/app/Cargo.toml", nil)
	meta.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).Return(idx, nil)

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("/ws").Return(domain.ToolConfig{SkipVerify: true}, nil)

	a := app.New(mocks.NewMockLogger(ctrl), meta, loader, nil)
	_, err := a.Verify(context.Background(), "/ws/app", app.SelectOptions{}, "/tmp/bundle.rs")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrVerificationDisabled))
}

func TestApp_Verify_MissingBundleFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	idx := snapshotFixture()

	meta := mocks.NewMockMetadataSource(ctrl)
	meta.EXPECT().LocateProject(gomock.Any()).Return("/ws/app/Cargo.toml", nil)
	meta.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).Return(idx, nil)

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("/ws").Return(domain.ToolConfig{}, nil)

	a := app.New(mocks.NewMockLogger(ctrl), meta, loader, nil)
	missing := filepath.Join(t.TempDir(), "bundle.rs")
	_, err := a.Verify(context.Background(), "/ws/app", app.SelectOptions{}, missing)
	require.Error(t, err)
}

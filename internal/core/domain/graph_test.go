package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/equip/internal/core/domain"
	"go.trai.ch/zerr"
)

func testIndex() *domain.Index {
	lib := domain.Package{
		ID:   domain.NewPackageID("lib 0.1.0"),
		Name: domain.NewInternedString("lib"),
		Targets: []domain.Target{
			{Kind: domain.TargetKindLib, Name: domain.NewInternedString("lib")},
		},
	}
	app := domain.Package{
		ID:   domain.NewPackageID("app 0.1.0"),
		Name: domain.NewInternedString("app"),
		Targets: []domain.Target{
			{Kind: domain.TargetKindBin, Name: domain.NewInternedString("app")},
		},
	}
	nodes := []*domain.Node{
		{
			ID:     app.ID,
			Deps:   []domain.NodeDep{{Name: domain.NewInternedString("lib"), Pkg: lib.ID}},
			DepIDs: []domain.PackageID{lib.ID},
		},
		{ID: lib.ID},
	}
	return domain.NewIndex(
		[]*domain.Package{&app, &lib},
		nodes,
		[]domain.PackageID{app.ID},
		"/ws", "/ws/target",
	)
}

func TestIndex_Lookups(t *testing.T) {
	idx := testIndex()

	p, err := idx.Package(domain.NewPackageID("app 0.1.0"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name.String() != "app" {
		t.Errorf("expected package app, got %s", p.Name.String())
	}

	n, err := idx.Node(p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(n.Deps) != 1 || n.Deps[0].Name.String() != "lib" {
		t.Errorf("unexpected node deps: %+v", n.Deps)
	}

	if !idx.IsMember(p.ID) {
		t.Error("expected app to be a workspace member")
	}
	if idx.IsMember(domain.NewPackageID("lib 0.1.0")) {
		t.Error("expected lib not to be a workspace member")
	}
	if got, want := idx.LockfilePath(), "/ws/Cargo.lock"; got != want {
		t.Errorf("LockfilePath() = %s, want %s", got, want)
	}
}

func TestIndex_PackageNotFound(t *testing.T) {
	idx := testIndex()

	_, err := idx.Package(domain.NewPackageID("ghost 1.0.0"))
	if err == nil {
		t.Fatal("expected error for unknown id, got nil")
	}
	if !errors.Is(err, domain.ErrPackageNotFound) {
		t.Fatalf("expected ErrPackageNotFound, got %v", err)
	}

	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	if id, ok := zErr.Metadata()["package_id"].(string); !ok || id != "ghost 1.0.0" {
		t.Errorf("expected metadata package_id, got %v", zErr.Metadata())
	}
}

func TestIndex_PackagesOrder(t *testing.T) {
	idx := testIndex()

	var names []string
	for p := range idx.Packages() {
		names = append(names, p.Name.String())
	}
	if len(names) != 2 || names[0] != "app" || names[1] != "lib" {
		t.Errorf("expected stable input order [app lib], got %v", names)
	}
}

func TestNodeDep_IsNormal(t *testing.T) {
	tests := []struct {
		name  string
		kinds []domain.DependencyKind
		want  bool
	}{
		{name: "empty kind set", kinds: nil, want: true},
		{name: "normal only", kinds: []domain.DependencyKind{domain.DependencyKindNormal}, want: true},
		{name: "dev only", kinds: []domain.DependencyKind{domain.DependencyKindDev}, want: false},
		{name: "build only", kinds: []domain.DependencyKind{domain.DependencyKindBuild}, want: false},
		{name: "normal and dev", kinds: []domain.DependencyKind{domain.DependencyKindNormal, domain.DependencyKindDev}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dep := domain.NodeDep{Kinds: tt.kinds}
			if got := dep.IsNormal(); got != tt.want {
				t.Errorf("IsNormal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPackage_LibTarget(t *testing.T) {
	p := domain.Package{
		Targets: []domain.Target{
			{Kind: domain.TargetKindBin, Name: domain.NewInternedString("cli")},
			{Kind: domain.TargetKindLib, Name: domain.NewInternedString("mylib")},
		},
	}
	lib, ok := p.LibTarget()
	if !ok {
		t.Fatal("expected a lib target")
	}
	if lib.Name.String() != "mylib" {
		t.Errorf("expected mylib, got %s", lib.Name.String())
	}

	bin := domain.Package{Targets: []domain.Target{{Kind: domain.TargetKindBin}}}
	if _, ok := bin.LibTarget(); ok {
		t.Error("expected no lib target")
	}
}

func TestPackage_ExplicitRenames(t *testing.T) {
	p := domain.Package{
		Dependencies: []domain.DeclaredDependency{
			{Name: domain.NewInternedString("serde")},
			{Name: domain.NewInternedString("rand"), Rename: domain.NewInternedString("random")},
		},
	}
	renames := p.ExplicitRenames()
	if len(renames) != 1 {
		t.Fatalf("expected 1 rename, got %d", len(renames))
	}
	if _, ok := renames[domain.NewInternedString("random")]; !ok {
		t.Error("expected rename `random` in set")
	}
}

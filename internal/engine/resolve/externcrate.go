package resolve

import (
	"strings"

	"go.trai.ch/equip/internal/core/domain"
	"go.trai.ch/zerr"
)

// DepLibByExternCrateName resolves the library target a package's source
// refers to under the given extern crate name.
//
// An explicit rename alias always shadows implicit name matching: when
// `from` declared any dependency under the candidate name, the resolved
// edge carrying that name wins outright. Otherwise the dependencies are
// scanned in stable edge order for a library target whose declared name,
// hyphens rewritten to underscores, equals the candidate; the first match
// wins.
func DepLibByExternCrateName(idx *domain.Index, from domain.PackageID, externCrateName string) (*domain.Target, *domain.Package, error) {
	pkg, err := idx.Package(from)
	if err != nil {
		return nil, nil, err
	}
	node, err := idx.Node(from)
	if err != nil {
		return nil, nil, err
	}

	if _, renamed := pkg.ExplicitRenames()[domain.NewInternedString(externCrateName)]; renamed {
		return depLibByRename(idx, node, externCrateName)
	}

	for _, depID := range node.DepIDs {
		dep, err := idx.Package(depID)
		if err != nil {
			return nil, nil, err
		}
		for i := range dep.Targets {
			t := &dep.Targets[i]
			if t.Kind == domain.TargetKindLib && crateIdent(t.Name.String()) == externCrateName {
				return t, dep, nil
			}
		}
	}
	return nil, nil, zerr.With(domain.ErrNoSuchExternCrate, "extern_crate_name", externCrateName)
}

func depLibByRename(idx *domain.Index, node *domain.Node, externCrateName string) (*domain.Target, *domain.Package, error) {
	var edge *domain.NodeDep
	for i := range node.Deps {
		if node.Deps[i].Name.String() == externCrateName {
			edge = &node.Deps[i]
			break
		}
	}
	if edge == nil {
		// Declared in the dependency table but missing from the resolved
		// edges: the snapshot is inconsistent.
		return nil, nil, zerr.With(domain.ErrPackageNotFound, "extern_crate_name", externCrateName)
	}

	dep, err := idx.Package(edge.Pkg)
	if err != nil {
		return nil, nil, err
	}
	lib, ok := dep.LibTarget()
	if !ok {
		err := zerr.With(domain.ErrNoLibraryTarget, "extern_crate_name", externCrateName)
		return nil, nil, zerr.With(err, "package", dep.Name.String())
	}
	return lib, dep, nil
}

// ExternCrateName computes the identifier `from`'s source would use to
// reference `to`. Only edges whose kind set is empty or solely normal are
// eligible; dev-only and build-only edges yield an absent result, as does a
// dependency without a library target.
func ExternCrateName(idx *domain.Index, from, to domain.PackageID) (string, bool, error) {
	fromPkg, err := idx.Package(from)
	if err != nil {
		return "", false, err
	}
	toPkg, err := idx.Package(to)
	if err != nil {
		return "", false, err
	}
	node, err := idx.Node(from)
	if err != nil {
		return "", false, err
	}

	var edge *domain.NodeDep
	for i := range node.Deps {
		if node.Deps[i].Pkg == to && node.Deps[i].IsNormal() {
			edge = &node.Deps[i]
			break
		}
	}
	if edge == nil {
		return "", false, nil
	}

	if _, renamed := fromPkg.ExplicitRenames()[edge.Name]; renamed {
		return edge.Name.String(), true, nil
	}

	lib, ok := toPkg.LibTarget()
	if !ok {
		return "", false, nil
	}
	return crateIdent(lib.Name.String()), true, nil
}

// crateIdent rewrites a manifest name into the identifier it surfaces as in
// source text.
func crateIdent(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// Package cargo adapts the host package manager's metadata query into the
// immutable package graph snapshot.
package cargo

import (
	"context"
	"encoding/json"

	"go.trai.ch/equip/internal/core/domain"
	"go.trai.ch/equip/internal/core/ports"
	"go.trai.ch/zerr"
)

// Source implements ports.MetadataSource by shelling out to `cargo`.
type Source struct {
	runner ports.Runner
}

// NewSource creates a new metadata source backed by the cargo CLI.
func NewSource(runner ports.Runner) *Source {
	return &Source{runner: runner}
}

// Query runs `cargo metadata` for the given manifest and decodes the
// result into a snapshot index. The snapshot reuses the project's existing
// resolution; no versions are re-resolved here.
func (s *Source) Query(ctx context.Context, manifestPath, cwd string) (*domain.Index, error) {
	out, err := s.runner.Output(ctx, ports.Command{
		Args: []string{"cargo", "metadata", "--format-version", "1", "--manifest-path", manifestPath},
		Dir:  cwd,
	})
	if err != nil {
		return nil, zerr.Wrap(err, "cargo metadata query failed")
	}

	var dto metadataDTO
	if err := json.Unmarshal(out, &dto); err != nil {
		return nil, zerr.Wrap(err, "failed to decode cargo metadata output")
	}
	return dto.toIndex(), nil
}

// metadataDTO mirrors the `cargo metadata --format-version 1` payload,
// restricted to the fields the snapshot needs.
type metadataDTO struct {
	Packages         []packageDTO `json:"packages"`
	WorkspaceMembers []string     `json:"workspace_members"`
	WorkspaceRoot    string       `json:"workspace_root"`
	TargetDirectory  string       `json:"target_directory"`
	Resolve          *resolveDTO  `json:"resolve"`
}

type packageDTO struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Edition      string          `json:"edition"`
	ManifestPath string          `json:"manifest_path"`
	Targets      []targetDTO     `json:"targets"`
	Dependencies []dependencyDTO `json:"dependencies"`
	Metadata     json.RawMessage `json:"metadata"`
}

type targetDTO struct {
	Kind    []string `json:"kind"`
	Name    string   `json:"name"`
	SrcPath string   `json:"src_path"`
}

type dependencyDTO struct {
	Name   string  `json:"name"`
	Rename *string `json:"rename"`
	Kind   *string `json:"kind"`
}

type resolveDTO struct {
	Nodes []nodeDTO `json:"nodes"`
}

type nodeDTO struct {
	ID           string       `json:"id"`
	Dependencies []string     `json:"dependencies"`
	Deps         []nodeDepDTO `json:"deps"`
}

type nodeDepDTO struct {
	Name     string       `json:"name"`
	Pkg      string       `json:"pkg"`
	DepKinds []depKindDTO `json:"dep_kinds"`
}

type depKindDTO struct {
	Kind *string `json:"kind"`
}

func (m metadataDTO) toIndex() *domain.Index {
	packages := make([]*domain.Package, len(m.Packages))
	for i, p := range m.Packages {
		packages[i] = p.toPackage()
	}

	var nodes []*domain.Node
	if m.Resolve != nil {
		nodes = make([]*domain.Node, len(m.Resolve.Nodes))
		for i, n := range m.Resolve.Nodes {
			nodes[i] = n.toNode()
		}
	}

	members := make([]domain.PackageID, len(m.WorkspaceMembers))
	for i, id := range m.WorkspaceMembers {
		members[i] = domain.NewPackageID(id)
	}

	return domain.NewIndex(packages, nodes, members, m.WorkspaceRoot, m.TargetDirectory)
}

func (p packageDTO) toPackage() *domain.Package {
	targets := make([]domain.Target, len(p.Targets))
	for i, t := range p.Targets {
		targets[i] = domain.Target{
			Kind:    targetKind(t.Kind),
			Name:    domain.NewInternedString(t.Name),
			SrcPath: domain.NewInternedString(t.SrcPath),
		}
	}

	deps := make([]domain.DeclaredDependency, len(p.Dependencies))
	for i, d := range p.Dependencies {
		dep := domain.DeclaredDependency{
			Name: domain.NewInternedString(d.Name),
			Kind: dependencyKind(d.Kind),
		}
		if d.Rename != nil {
			dep.Rename = domain.NewInternedString(*d.Rename)
		}
		deps[i] = dep
	}

	metadata := p.Metadata
	if string(metadata) == "null" {
		metadata = nil
	}

	return &domain.Package{
		ID:           domain.NewPackageID(p.ID),
		Name:         domain.NewInternedString(p.Name),
		Edition:      p.Edition,
		ManifestPath: domain.NewInternedString(p.ManifestPath),
		Targets:      targets,
		Dependencies: deps,
		Metadata:     metadata,
	}
}

func (n nodeDTO) toNode() *domain.Node {
	deps := make([]domain.NodeDep, len(n.Deps))
	for i, d := range n.Deps {
		var kinds []domain.DependencyKind
		for _, k := range d.DepKinds {
			kinds = append(kinds, dependencyKind(k.Kind))
		}
		deps[i] = domain.NodeDep{
			Name:  domain.NewInternedString(d.Name),
			Pkg:   domain.NewPackageID(d.Pkg),
			Kinds: kinds,
		}
	}

	depIDs := make([]domain.PackageID, len(n.Dependencies))
	for i, id := range n.Dependencies {
		depIDs[i] = domain.NewPackageID(id)
	}

	return &domain.Node{
		ID:     domain.NewPackageID(n.ID),
		Deps:   deps,
		DepIDs: depIDs,
	}
}

// targetKind maps cargo's kind array onto the three kinds of interest.
// Only a plain ["lib"] or ["bin"] counts; everything else (proc-macro,
// test, bench, example, multi-kind) is other.
func targetKind(kinds []string) domain.TargetKind {
	if len(kinds) != 1 {
		return domain.TargetKindOther
	}
	switch kinds[0] {
	case "lib":
		return domain.TargetKindLib
	case "bin":
		return domain.TargetKindBin
	default:
		return domain.TargetKindOther
	}
}

// dependencyKind maps cargo's nullable kind string; null means normal.
func dependencyKind(kind *string) domain.DependencyKind {
	if kind == nil {
		return domain.DependencyKindNormal
	}
	switch *kind {
	case "dev":
		return domain.DependencyKindDev
	case "build":
		return domain.DependencyKindBuild
	default:
		return domain.DependencyKindNormal
	}
}

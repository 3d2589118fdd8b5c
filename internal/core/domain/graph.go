// Package domain contains the core domain models for the package graph
// snapshot and the bundling metadata derived from it.
package domain

import (
	"iter"
	"path/filepath"

	"go.trai.ch/zerr"
)

// PackageID is the opaque unique identifier of a package within one
// metadata snapshot. IDs repeat across every edge of the graph, so they
// are interned.
type PackageID = InternedString

// NewPackageID interns the given identifier string.
func NewPackageID(s string) PackageID {
	return NewInternedString(s)
}

// NodeDep is one resolved dependency edge of a package.
type NodeDep struct {
	// Name is the effective name under which the edge was resolved; this is
	// the identifier source code uses unless it is an explicit rename.
	Name InternedString
	// Pkg is the id of the package the edge points at.
	Pkg PackageID
	// Kinds is the set of dependency kinds attached to the edge. Older
	// metadata snapshots leave it empty.
	Kinds []DependencyKind
}

// IsNormal reports whether the edge is eligible for bundling: its kind set
// is empty or consists solely of the normal kind. Dev-only and build-only
// edges are never inlined.
func (d NodeDep) IsNormal() bool {
	if len(d.Kinds) == 0 {
		return true
	}
	return len(d.Kinds) == 1 && d.Kinds[0] == DependencyKindNormal
}

// Node is the per-package record of resolved edges in one snapshot.
type Node struct {
	ID PackageID
	// Deps are the named edges in stable snapshot order.
	Deps []NodeDep
	// DepIDs is the flattened dependency id list in stable snapshot order.
	DepIDs []PackageID
}

// Index is an immutable read-only view over one package graph snapshot.
// It is built once per invocation and never mutated afterwards; every
// lookup that misses is a consistency error, not a user-facing condition.
type Index struct {
	packages      []*Package
	byID          map[PackageID]*Package
	nodes         map[PackageID]*Node
	members       map[PackageID]struct{}
	workspaceRoot string
	targetDir     string
}

// NewIndex assembles a snapshot from its parts. The package slice order is
// preserved and used as the stable iteration order everywhere.
func NewIndex(packages []*Package, nodes []*Node, members []PackageID, workspaceRoot, targetDir string) *Index {
	idx := &Index{
		packages:      packages,
		byID:          make(map[PackageID]*Package, len(packages)),
		nodes:         make(map[PackageID]*Node, len(nodes)),
		members:       make(map[PackageID]struct{}, len(members)),
		workspaceRoot: workspaceRoot,
		targetDir:     targetDir,
	}
	for _, p := range packages {
		idx.byID[p.ID] = p
	}
	for _, n := range nodes {
		idx.nodes[n.ID] = n
	}
	for _, id := range members {
		idx.members[id] = struct{}{}
	}
	return idx
}

// Packages yields every package of the snapshot in stable input order.
func (idx *Index) Packages() iter.Seq[*Package] {
	return func(yield func(*Package) bool) {
		for _, p := range idx.packages {
			if !yield(p) {
				return
			}
		}
	}
}

// Package looks up a package by id.
func (idx *Index) Package(id PackageID) (*Package, error) {
	p, ok := idx.byID[id]
	if !ok {
		return nil, zerr.With(ErrPackageNotFound, "package_id", id.String())
	}
	return p, nil
}

// Node looks up the resolved dependency node of a package.
func (idx *Index) Node(id PackageID) (*Node, error) {
	n, ok := idx.nodes[id]
	if !ok {
		return nil, zerr.With(ErrPackageNotFound, "package_id", id.String())
	}
	return n, nil
}

// IsMember reports whether the package is a workspace member.
func (idx *Index) IsMember(id PackageID) bool {
	_, ok := idx.members[id]
	return ok
}

// WorkspaceRoot is the root directory shared by all workspace members.
func (idx *Index) WorkspaceRoot() string {
	return idx.workspaceRoot
}

// TargetDir is the shared build/output cache directory of the workspace.
func (idx *Index) TargetDir() string {
	return idx.targetDir
}

// LockfilePath is the path of the workspace's shared lock file.
func (idx *Index) LockfilePath() string {
	return filepath.Join(idx.workspaceRoot, "Cargo.lock")
}

package domain

import "encoding/json"

// TargetKind classifies a compiled-artifact root within a package.
type TargetKind string

const (
	// TargetKindLib marks a library target. A package exposes at most one.
	TargetKindLib TargetKind = "lib"
	// TargetKindBin marks a binary target.
	TargetKindBin TargetKind = "bin"
	// TargetKindOther covers every remaining target kind (tests, benches,
	// proc-macros). They never participate in bundling.
	TargetKindOther TargetKind = "other"
)

// DependencyKind classifies a declared dependency edge.
type DependencyKind string

const (
	// DependencyKindNormal is a regular dependency.
	DependencyKindNormal DependencyKind = "normal"
	// DependencyKindDev is a dev-dependency.
	DependencyKindDev DependencyKind = "dev"
	// DependencyKindBuild is a build-dependency.
	DependencyKindBuild DependencyKind = "build"
)

// Target is a compiled-artifact root owned by exactly one package.
type Target struct {
	Kind TargetKind
	Name InternedString
	// SrcPath is the absolute path of the target's main source file.
	SrcPath InternedString
}

// DeclaredDependency is one entry of a package's manifest dependency table.
type DeclaredDependency struct {
	// Name is the name the dependency was declared under.
	Name InternedString
	// Rename is the explicit alias when the dependency was declared under an
	// alternate local name. Zero value means no rename.
	Rename InternedString
	Kind   DependencyKind
}

// Package is a distributable unit in one metadata snapshot.
// It is immutable for the duration of a run.
type Package struct {
	ID           PackageID
	Name         InternedString
	Edition      string
	ManifestPath InternedString
	Targets      []Target
	Dependencies []DeclaredDependency
	// Metadata is the raw `package.metadata` blob, nil or literal null when
	// the manifest carries none.
	Metadata json.RawMessage
}

// LibTarget returns the package's library target.
// The snapshot invariant guarantees at most one.
func (p *Package) LibTarget() (*Target, bool) {
	for i := range p.Targets {
		if p.Targets[i].Kind == TargetKindLib {
			return &p.Targets[i], true
		}
	}
	return nil, false
}

// ExplicitRenames collects the set of explicit rename aliases the package
// declared for any of its dependencies.
func (p *Package) ExplicitRenames() map[InternedString]struct{} {
	renames := make(map[InternedString]struct{})
	for _, dep := range p.Dependencies {
		if dep.Rename != (InternedString{}) {
			renames[dep.Rename] = struct{}{}
		}
	}
	return renames
}

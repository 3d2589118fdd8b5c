// Package resolve implements name resolution over a package graph
// snapshot: bin-target selection and the mapping between dependency edges
// and the extern crate names source code uses for them.
package resolve

import (
	"strings"

	"go.trai.ch/equip/internal/core/domain"
	"go.trai.ch/zerr"
)

// BinTarget pairs a binary target with its owning package.
type BinTarget struct {
	Target *domain.Target
	Pkg    *domain.Package
}

// BinTargets returns every binary target owned by a workspace-member
// package, in stable snapshot order.
func BinTargets(idx *domain.Index) []BinTarget {
	var bins []BinTarget
	for pkg := range idx.Packages() {
		if !idx.IsMember(pkg.ID) {
			continue
		}
		for i := range pkg.Targets {
			if pkg.Targets[i].Kind == domain.TargetKindBin {
				bins = append(bins, BinTarget{Target: &pkg.Targets[i], Pkg: pkg})
			}
		}
	}
	return bins
}

// ExactlyOneBinTarget succeeds when the workspace exposes a single bin
// target, the usual single-binary project case.
func ExactlyOneBinTarget(idx *domain.Index) (BinTarget, error) {
	sel := domain.NewSelection(BinTargets(idx))
	switch sel.State() {
	case domain.SelectionUnique:
		return sel.One(), nil
	case domain.SelectionAbsent:
		return BinTarget{}, domain.ErrNoBinTarget
	default:
		return BinTarget{}, ambiguousErr(sel, "use `--bin` or `--src` to specify a binary")
	}
}

// BinTargetByName selects the bin target with the given name. A workspace
// may legally contain several binaries sharing a name across packages; that
// case is Ambiguous and the caller must disambiguate by source path.
func BinTargetByName(idx *domain.Index, name string) (BinTarget, error) {
	sel := filterBinTargets(idx, func(b BinTarget) bool {
		return b.Target.Name.String() == name
	})
	switch sel.State() {
	case domain.SelectionUnique:
		return sel.One(), nil
	case domain.SelectionAbsent:
		return BinTarget{}, zerr.With(zerr.New("no bin target with the given name"), "name", name)
	default:
		return BinTarget{}, zerr.With(ambiguousErr(sel, "use `--src` to disambiguate"), "name", name)
	}
}

// BinTargetBySrcPath selects the bin target whose main source file is
// exactly the given path.
func BinTargetBySrcPath(idx *domain.Index, srcPath string) (BinTarget, error) {
	sel := filterBinTargets(idx, func(b BinTarget) bool {
		return b.Target.SrcPath.String() == srcPath
	})
	switch sel.State() {
	case domain.SelectionUnique:
		return sel.One(), nil
	case domain.SelectionAbsent:
		return BinTarget{}, zerr.With(zerr.New("not the main source file of any bin target in this workspace"), "src_path", srcPath)
	default:
		return BinTarget{}, zerr.With(ambiguousErr(sel, ""), "src_path", srcPath)
	}
}

func filterBinTargets(idx *domain.Index, keep func(BinTarget) bool) domain.Selection[BinTarget] {
	var matched []BinTarget
	for _, b := range BinTargets(idx) {
		if keep(b) {
			matched = append(matched, b)
		}
	}
	return domain.NewSelection(matched)
}

func ambiguousErr(sel domain.Selection[BinTarget], hint string) error {
	names := make([]string, len(sel.Candidates))
	for i, b := range sel.Candidates {
		names[i] = b.Target.Name.String()
	}
	err := zerr.With(domain.ErrAmbiguousBinTarget, "available_binaries", strings.Join(names, ", "))
	if hint != "" {
		err = zerr.With(err, "hint", hint)
	}
	return err
}

// Package app implements the application layer for equip.
package app

import (
	"context"
	"os"

	"go.trai.ch/equip/internal/core/domain"
	"go.trai.ch/equip/internal/core/ports"
	"go.trai.ch/equip/internal/engine/resolve"
	"go.trai.ch/equip/internal/engine/sandbox"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	logger   ports.Logger
	meta     ports.MetadataSource
	loader   ports.ConfigLoader
	verifier *sandbox.Verifier
}

// New creates a new App instance.
func New(logger ports.Logger, meta ports.MetadataSource, loader ports.ConfigLoader, verifier *sandbox.Verifier) *App {
	return &App{
		logger:   logger,
		meta:     meta,
		loader:   loader,
		verifier: verifier,
	}
}

// SelectOptions narrows the bin-target selection. Flags win over the
// equip.yaml defaults; with neither set the workspace must expose exactly
// one bin target.
type SelectOptions struct {
	Bin string
	Src string
}

// ResolvedDependency is one eligible dependency edge of the selected
// package, annotated with the identifier its source uses for it.
type ResolvedDependency struct {
	ExternName string
	Package    string
	LibTarget  string
}

// ResolveReport is the outcome of a resolve run.
type ResolveReport struct {
	BinTarget    string
	SrcPath      string
	Package      *domain.Package
	Dependencies []ResolvedDependency
	Config       domain.PackageConfig
}

// Resolve locates the project, snapshots its package graph, selects a bin
// target and reports every eligible dependency edge under the extern crate
// name the package's source would use for it.
func (a *App) Resolve(ctx context.Context, cwd string, opts SelectOptions) (*ResolveReport, error) {
	idx, err := a.snapshot(ctx, cwd)
	if err != nil {
		return nil, err
	}
	toolCfg, err := a.loader.Load(idx.WorkspaceRoot())
	if err != nil {
		return nil, err
	}
	target, err := selectBinTarget(idx, opts, toolCfg)
	if err != nil {
		return nil, err
	}

	cfg, err := resolve.ParsePackageConfig(target.Pkg, a.logger)
	if err != nil {
		return nil, err
	}

	node, err := idx.Node(target.Pkg.ID)
	if err != nil {
		return nil, err
	}

	var deps []ResolvedDependency
	for _, depID := range node.DepIDs {
		name, ok, err := resolve.ExternCrateName(idx, target.Pkg.ID, depID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		dep, err := idx.Package(depID)
		if err != nil {
			return nil, err
		}
		// A renamed dependency may point at a package without a lib target,
		// such as a proc-macro crate; the edge still resolves to the rename.
		libName := ""
		if lib, ok := dep.LibTarget(); ok {
			libName = lib.Name.String()
		}
		deps = append(deps, ResolvedDependency{
			ExternName: name,
			Package:    dep.Name.String(),
			LibTarget:  libName,
		})
	}

	return &ResolveReport{
		BinTarget:    target.Target.Name.String(),
		SrcPath:      target.Target.SrcPath.String(),
		Package:      target.Pkg,
		Dependencies: deps,
		Config:       cfg,
	}, nil
}

// Verify runs the candidate bundled source at codePath through the
// sandboxed offline check for the selected bin target's package.
func (a *App) Verify(ctx context.Context, cwd string, opts SelectOptions, codePath string) (*sandbox.Result, error) {
	idx, err := a.snapshot(ctx, cwd)
	if err != nil {
		return nil, err
	}
	toolCfg, err := a.loader.Load(idx.WorkspaceRoot())
	if err != nil {
		return nil, err
	}
	if toolCfg.SkipVerify {
		return nil, domain.ErrVerificationDisabled
	}
	target, err := selectBinTarget(idx, opts, toolCfg)
	if err != nil {
		return nil, err
	}

	code, err := os.ReadFile(codePath) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read bundled source"), "path", codePath)
	}

	return a.verifier.CheckWithCurrentLockfile(ctx, idx, target.Pkg, code)
}

// snapshot locates the nearest manifest above cwd and queries the package
// graph for it.
func (a *App) snapshot(ctx context.Context, cwd string) (*domain.Index, error) {
	manifestPath, err := a.meta.LocateProject(cwd)
	if err != nil {
		return nil, err
	}
	idx, err := a.meta.Query(ctx, manifestPath, cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to snapshot the package graph")
	}
	return idx, nil
}

func selectBinTarget(idx *domain.Index, opts SelectOptions, cfg domain.ToolConfig) (resolve.BinTarget, error) {
	bin := opts.Bin
	if bin == "" {
		bin = cfg.Bin
	}
	src := opts.Src
	if src == "" {
		src = cfg.Src
	}

	switch {
	case bin != "":
		return resolve.BinTargetByName(idx, bin)
	case src != "":
		return resolve.BinTargetBySrcPath(idx, src)
	default:
		return resolve.ExactlyOneBinTarget(idx)
	}
}

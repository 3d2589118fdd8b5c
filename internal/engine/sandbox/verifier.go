// Package sandbox verifies that a bundled source file still type-checks
// against the project's pinned dependency versions, inside a disposable
// package that never touches the real project's files.
package sandbox

import (
	"context"
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/equip/internal/core/domain"
	"go.trai.ch/equip/internal/core/ports"
	"go.trai.ch/zerr"
)

// scratchPrefix makes leftover directories identifiable should cleanup
// ever be interrupted.
const scratchPrefix = "equip-check-output-"

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// ManifestPatchFunc copies the dependency table from the source manifest
// into the scratch manifest, dropping path entries, and returns the names
// of the dropped entries.
type ManifestPatchFunc func(srcManifest, scratchManifest string) ([]string, error)

// Result describes a successful verification.
type Result struct {
	// ScratchName is the name of the disposable package that hosted the check.
	ScratchName string
	// Fingerprint identifies the exact candidate source that was checked.
	Fingerprint uint64
}

// Verifier runs the offline check pipeline. It owns exactly one ephemeral
// directory per call and removes it on every exit path.
type Verifier struct {
	runner        ports.Runner
	logger        ports.Logger
	tracer        ports.Tracer
	patchManifest ManifestPatchFunc
}

// NewVerifier creates a Verifier.
func NewVerifier(runner ports.Runner, logger ports.Logger, tracer ports.Tracer, patch ManifestPatchFunc) *Verifier {
	return &Verifier{
		runner:        runner,
		logger:        logger,
		tracer:        tracer,
		patchManifest: patch,
	}
}

// CheckWithCurrentLockfile type-checks code as if it were the sole binary
// of a fresh package pinned to the workspace's existing lock file. The
// scratch package lives under the workspace root so the shared lock file
// and build cache remain valid relative references. No network access, no
// version re-resolution, no mutation of the real project.
func (v *Verifier) CheckWithCurrentLockfile(ctx context.Context, idx *domain.Index, pkg *domain.Package, code []byte) (_ *Result, err error) {
	name, err := scratchName()
	if err != nil {
		return nil, err
	}

	root := idx.WorkspaceRoot()
	dir := filepath.Join(root, name)
	if err := os.Mkdir(dir, 0o755); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create scratch package directory"), "path", dir)
	}
	// Cleanup is unconditional. A failure to remove is only warned about:
	// the caller's error, if any, must survive untouched.
	defer func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			v.logger.Warn(fmt.Sprintf("failed to remove scratch package %s: %v", dir, rmErr))
		}
	}()

	ctx, span := v.tracer.Start(ctx, "verify bundled source")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()
	span.SetAttribute("scratch_dir", dir)

	if err := v.initSkeleton(ctx, span, root, dir, name, pkg.Edition); err != nil {
		return nil, err
	}

	scratchManifest := filepath.Join(dir, "Cargo.toml")
	dropped, err := v.patchManifest(pkg.ManifestPath.String(), scratchManifest)
	if err != nil {
		return nil, err
	}
	if len(dropped) > 0 {
		v.logger.Info(fmt.Sprintf("dropped path dependencies from scratch manifest: %s", strings.Join(dropped, ", ")))
	}

	if err := v.injectSource(dir, name, code); err != nil {
		return nil, err
	}
	if err := copyFile(idx.LockfilePath(), filepath.Join(dir, "Cargo.lock")); err != nil {
		return nil, err
	}

	if err := v.runner.Run(ctx, ports.Command{
		Args:   []string{"cargo", "check", "--target-dir", idx.TargetDir(), "--manifest-path", scratchManifest, "--offline"},
		Dir:    root,
		Stdout: span,
		Stderr: span,
	}); err != nil {
		return nil, zerr.Wrap(err, "offline check of the bundled source failed")
	}

	return &Result{
		ScratchName: name,
		Fingerprint: xxhash.Sum64(code),
	}, nil
}

// initSkeleton creates the minimal binary package, matching the source
// package's language edition.
func (v *Verifier) initSkeleton(ctx context.Context, span ports.Span, root, dir, name, edition string) error {
	if err := v.runner.Run(ctx, ports.Command{
		Args:   []string{"cargo", "init", "-q", "--vcs", "none", "--bin", "--edition", edition, "--name", name, dir},
		Dir:    root,
		Stdout: span,
		Stderr: span,
	}); err != nil {
		return zerr.Wrap(err, "failed to initialize scratch package")
	}
	return nil
}

// injectSource writes the candidate code as the package's sole binary
// entry point. The skeleton's default entry point is removed so the
// scratch name stays the only target.
func (v *Verifier) injectSource(dir, name string, code []byte) error {
	binDir := filepath.Join(dir, "src", "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create bin directory"), "path", binDir)
	}
	binPath := filepath.Join(binDir, name+".rs")
	if err := os.WriteFile(binPath, code, 0o644); err != nil { //nolint:gosec // source file, not a secret
		return zerr.With(zerr.Wrap(err, "failed to write bundled source"), "path", binPath)
	}
	mainPath := filepath.Join(dir, "src", "main.rs")
	if err := os.Remove(mainPath); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove skeleton entry point"), "path", mainPath)
	}
	return nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src) //nolint:gosec // lock file inside the workspace
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read lock file"), "path", src)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil { //nolint:gosec // scratch copy
		return zerr.With(zerr.Wrap(err, "failed to write lock file copy"), "path", dst)
	}
	return nil
}

// scratchName returns the fixed prefix plus 16 random lowercase
// alphanumeric characters. Randomness is the sole collision-avoidance
// mechanism for concurrent invocations against one workspace.
func scratchName() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", zerr.Wrap(err, "failed to generate scratch package name")
	}
	for i, b := range buf {
		buf[i] = suffixAlphabet[int(b)%len(suffixAlphabet)]
	}
	return scratchPrefix + string(buf), nil
}

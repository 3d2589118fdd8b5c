package domain

import "go.trai.ch/zerr"

var (
	// ErrProjectNotFound is returned when no manifest exists in the working
	// directory or any of its ancestors.
	ErrProjectNotFound = zerr.New("could not find `Cargo.toml` in the working directory or any parent directory")

	// ErrPackageNotFound is returned when an id used by a caller is absent
	// from the snapshot. This indicates an inconsistent snapshot, not a
	// normal user-facing condition.
	ErrPackageNotFound = zerr.New("package not found in the dependency graph")

	// ErrNoBinTarget is returned when a workspace has no bin target at all.
	ErrNoBinTarget = zerr.New("no bin target in this workspace")

	// ErrAmbiguousBinTarget is returned when several bin targets match where
	// exactly one was required. The candidate names travel as metadata.
	ErrAmbiguousBinTarget = zerr.New("could not determine which binary to choose")

	// ErrNoSuchExternCrate is returned when no dependency's library target
	// matches a candidate extern crate name.
	ErrNoSuchExternCrate = zerr.New("no external library found for extern crate name")

	// ErrNoLibraryTarget is returned when an explicitly renamed dependency
	// resolves to a package without a lib target.
	ErrNoLibraryTarget = zerr.New("dependency has no lib target")

	// ErrMalformedPackageConfig is returned when a present
	// `package.metadata.equip` blob fails schema validation.
	ErrMalformedPackageConfig = zerr.New("could not parse `package.metadata.equip`")

	// ErrMalformedModulePath is returned when a pseudo module path string
	// fails the two-segment anchored grammar.
	ErrMalformedModulePath = zerr.New("expected `::<extern crate name>::<module name>`")

	// ErrCommandFailed is returned when an external tool exits abnormally or
	// cannot be launched.
	ErrCommandFailed = zerr.New("external command failed")

	// ErrVerificationDisabled is returned when a verification is requested
	// but equip.yaml sets skipVerify.
	ErrVerificationDisabled = zerr.New("verification is disabled by `equip.yaml`")
)

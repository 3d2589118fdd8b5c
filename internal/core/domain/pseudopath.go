package domain

import (
	"fmt"
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// pseudoModulePathPattern anchors the two-segment grammar. Any other number
// of `::`-delimited segments is a parse failure.
var pseudoModulePathPattern = regexp.MustCompile(`\A::([a-zA-Z0-9_]+)::([a-zA-Z0-9_]+)\z`)

// PseudoModulePath denotes a conceptually bundled module as the pair of the
// extern crate name and the module name. It is used to manually declare
// inter-module dependencies when automatic detection is insufficient.
type PseudoModulePath struct {
	ExternCrateName string
	ModuleName      string
}

// ParsePseudoModulePath parses the canonical `::crate::module` form.
func ParsePseudoModulePath(s string) (PseudoModulePath, error) {
	caps := pseudoModulePathPattern.FindStringSubmatch(s)
	if caps == nil {
		return PseudoModulePath{}, zerr.With(ErrMalformedModulePath, "input", s)
	}
	return PseudoModulePath{ExternCrateName: caps[1], ModuleName: caps[2]}, nil
}

// String returns the quoted canonical form, e.g. `"::library::module"`.
func (p PseudoModulePath) String() string {
	return fmt.Sprintf("%q", "::"+p.ExternCrateName+"::"+p.ModuleName)
}

// Compare orders paths by (extern crate name, module name).
func (p PseudoModulePath) Compare(o PseudoModulePath) int {
	if c := strings.Compare(p.ExternCrateName, o.ExternCrateName); c != 0 {
		return c
	}
	return strings.Compare(p.ModuleName, o.ModuleName)
}

// MarshalText implements encoding.TextMarshaler with the unquoted
// canonical form, so the type round-trips through JSON keys and values.
func (p PseudoModulePath) MarshalText() ([]byte, error) {
	return []byte("::" + p.ExternCrateName + "::" + p.ModuleName), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PseudoModulePath) UnmarshalText(text []byte) error {
	parsed, err := ParsePseudoModulePath(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

package domain

import "slices"

// PackageConfig is a package's optional declared module-dependency
// configuration, read from the `package.metadata.equip` blob.
//
// A zero-value config means the package declares nothing and is interpreted
// downstream as "include all modules".
type PackageConfig struct {
	// ModuleDependencies maps a bundled module to the set of bundled modules
	// it depends on. Sets are kept sorted and deduplicated.
	ModuleDependencies map[PseudoModulePath][]PseudoModulePath `json:"module-dependencies"`
}

// Normalize sorts and deduplicates every dependency set in place.
func (c *PackageConfig) Normalize() {
	for key, deps := range c.ModuleDependencies {
		slices.SortFunc(deps, PseudoModulePath.Compare)
		c.ModuleDependencies[key] = slices.CompactFunc(deps, func(a, b PseudoModulePath) bool {
			return a == b
		})
	}
}

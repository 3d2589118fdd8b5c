package domain

// ToolConfig is the optional per-project tool configuration (equip.yaml).
// Zero value means "no defaults configured".
type ToolConfig struct {
	// Bin preselects a bin target by name.
	Bin string
	// Src preselects a bin target by its main source file path.
	Src string
	// SkipVerify disables the sandboxed type-check of generated bundles.
	SkipVerify bool
}

package cargo

import (
	"os"
	"path/filepath"

	"go.trai.ch/equip/internal/core/domain"
	"go.trai.ch/zerr"
)

// LocateProject walks from cwd upwards and returns the path of the nearest
// Cargo.toml.
func (s *Source) LocateProject(cwd string) (string, error) {
	dir := filepath.Clean(cwd)
	for {
		manifest := filepath.Join(dir, "Cargo.toml")
		if _, err := os.Stat(manifest); err == nil {
			return manifest, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", zerr.With(domain.ErrProjectNotFound, "cwd", cwd)
		}
		dir = parent
	}
}

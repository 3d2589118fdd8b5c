// Package manifest handles the dependency-table surgery on Cargo.toml
// files needed to detach a scratch package from its workspace.
package manifest

import (
	"os"
	"slices"

	"github.com/BurntSushi/toml"
	"go.trai.ch/zerr"
)

// CopyDependencies copies the `[dependencies]` table of the source
// manifest into the scratch manifest, dropping every entry that resolves
// via a local filesystem path. Path entries are intra-project references
// that cannot resolve once detached, and a fully bundled file no longer
// depends on sibling packages. Returns the names of the dropped entries.
func CopyDependencies(srcPath, scratchPath string) ([]string, error) {
	src, err := decode(srcPath)
	if err != nil {
		return nil, err
	}
	scratch, err := decode(scratchPath)
	if err != nil {
		return nil, err
	}

	var dropped []string
	if deps, ok := src["dependencies"].(map[string]any); ok {
		kept := make(map[string]any, len(deps))
		for name, spec := range deps {
			if table, ok := spec.(map[string]any); ok {
				if _, hasPath := table["path"]; hasPath {
					dropped = append(dropped, name)
					continue
				}
			}
			kept[name] = spec
		}
		scratch["dependencies"] = kept
	}
	slices.Sort(dropped)

	f, err := os.Create(scratchPath) //nolint:gosec // path is inside the scratch package
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to write scratch manifest"), "path", scratchPath)
	}
	defer f.Close() //nolint:errcheck // flushed below

	if err := toml.NewEncoder(f).Encode(scratch); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to encode scratch manifest"), "path", scratchPath)
	}
	if err := f.Close(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to flush scratch manifest"), "path", scratchPath)
	}
	return dropped, nil
}

func decode(path string) (map[string]any, error) {
	var doc map[string]any
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}
	return doc, nil
}

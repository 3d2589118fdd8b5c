// Package config provides the configuration loader for equip.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/equip/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the per-project configuration file, looked up next to
// the workspace root manifest.
const DefaultFilename = "equip.yaml"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// Load reads the configuration from the given directory. A missing file is
// not an error; every setting has a working default.
func (l *FileConfigLoader) Load(dir string) (domain.ToolConfig, error) {
	name := l.Filename
	if name == "" {
		name = DefaultFilename
	}
	return Load(filepath.Join(dir, name))
}

// configDTO represents the structure of the equip.yaml configuration file.
type configDTO struct {
	Bin        string `yaml:"bin"`
	Src        string `yaml:"src"`
	SkipVerify bool   `yaml:"skipVerify"`
}

// Load reads a configuration file from the given path.
func Load(path string) (domain.ToolConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if errors.Is(err, fs.ErrNotExist) {
		return domain.ToolConfig{}, nil
	}
	if err != nil {
		return domain.ToolConfig{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var dto configDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return domain.ToolConfig{}, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	return domain.ToolConfig{
		Bin:        dto.Bin,
		Src:        dto.Src,
		SkipVerify: dto.SkipVerify,
	}, nil
}

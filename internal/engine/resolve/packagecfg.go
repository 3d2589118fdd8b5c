package resolve

import (
	"encoding/json"
	"errors"

	"go.trai.ch/equip/internal/core/domain"
	"go.trai.ch/equip/internal/core/ports"
	"go.trai.ch/zerr"
)

// ParsePackageConfig evaluates a package's `package.metadata.equip` blob.
//
// A missing blob downgrades to the zero-value configuration with a warning:
// downstream bundling then includes all of the package's modules. A present
// but malformed blob is fatal.
func ParsePackageConfig(pkg *domain.Package, logger ports.Logger) (domain.PackageConfig, error) {
	if len(pkg.Metadata) == 0 || string(pkg.Metadata) == "null" {
		warnMissing(pkg, logger)
		return domain.PackageConfig{}, nil
	}

	var wrapper struct {
		Equip *domain.PackageConfig `json:"equip"`
	}
	if err := json.Unmarshal(pkg.Metadata, &wrapper); err != nil {
		malformed := zerr.With(domain.ErrMalformedPackageConfig, "manifest_path", pkg.ManifestPath.String())
		return domain.PackageConfig{}, errors.Join(malformed, err)
	}

	if wrapper.Equip == nil {
		warnMissing(pkg, logger)
		return domain.PackageConfig{}, nil
	}

	cfg := *wrapper.Equip
	cfg.Normalize()
	return cfg, nil
}

func warnMissing(pkg *domain.Package, logger ports.Logger) {
	logger.Warn("missing `package.metadata.equip` in `" + pkg.ManifestPath.String() + "`. including all of the modules")
}

package ports

import (
	"context"

	"go.trai.ch/equip/internal/core/domain"
)

// MetadataSource locates a project and produces the package graph snapshot
// for it.
//
//go:generate go run go.uber.org/mock/mockgen -source=metadata.go -destination=mocks/mock_metadata.go -package=mocks
type MetadataSource interface {
	// LocateProject walks from cwd upwards to the nearest manifest file and
	// returns its path. Fails with ErrProjectNotFound.
	LocateProject(cwd string) (string, error)

	// Query runs the host package manager's metadata query for the given
	// manifest and returns the immutable snapshot index.
	Query(ctx context.Context, manifestPath, cwd string) (*domain.Index, error)
}

package ports

import (
	"context"

	"go.trai.ch/buildinfo/internal/core/domain"
)

// BuildInfoStore defines the interface for storing and retrieving build information.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildInfoStore interface {
	// Get retrieves the build info for a given task name from the store directory.
	// Returns nil, nil if not found.
	Get(dir, taskName string) (*domain.BuildInfo, error)

	// Put stores the build info in the store directory.
	Put(dir string, info domain.BuildInfo) error

	// List returns every record in the store directory ordered by task name.
	List(ctx context.Context, dir string) ([]domain.BuildInfo, error)
}

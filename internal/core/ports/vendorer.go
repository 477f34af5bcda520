package ports

import (
	"context"

	"go.trai.ch/shelf/internal/core/domain"
)

// Vendorer exports resolved cookbooks into a directory.
//
//go:generate mockgen -source=vendorer.go -destination=mocks/mock_vendorer.go -package=mocks
type Vendorer interface {
	// Vendor replaces dest with the given sources and returns its absolute path.
	Vendor(ctx context.Context, dest string, sources []domain.ResolvedSource) (string, error)
}

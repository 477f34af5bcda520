package ports

import (
	"context"

	"go.trai.ch/shelf/internal/core/domain"
)

// Resolver defines the interface for turning constrained sources into concrete versions.
// Implementations hold no per-call state and may be shared.
//
//go:generate mockgen -destination=mocks/resolver_mock.go -package=mocks -source=resolver.go
type Resolver interface {
	// Resolve returns the declared sources and their transitive dependencies,
	// each bound to a version satisfying its constraint.
	Resolve(ctx context.Context, sources []domain.Source) ([]domain.ResolvedSource, error)
}

package ports

import (
	"context"
	"depot-route-service/internal/domain"
)

// Contract for memoizing solutions by an input fingerprint.
// Solutions are a pure function of their input, so a hit is always valid.
type SolutionCache interface {
	// Return the cached solution for key and whether it was found.
	Get(ctx context.Context, key string) (*domain.Solution, bool, error)
	// Store a solution under key.
	Put(ctx context.Context, key string, sol *domain.Solution) error
}

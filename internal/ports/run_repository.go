package ports

import (
	"context"
	"depot-route-service/internal/domain"
	"errors"
)

// ErrRunNotFound is returned when no archived run has the requested ID.
var ErrRunNotFound = errors.New("run not found")

// Port: a boundary for archiving routing runs.
type RunRepository interface {
	// Persist a completed run.
	SaveRun(ctx context.Context, run *domain.Run) error
	// Retrieve a run by ID, or ErrRunNotFound.
	GetRun(ctx context.Context, id string) (*domain.Run, error)
	// List the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]domain.RunSummary, error)
}

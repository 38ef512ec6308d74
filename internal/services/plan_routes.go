package services

import (
	"context"
	"depot-route-service/internal/domain"
	"depot-route-service/internal/platform/metrics"
	"depot-route-service/internal/platform/obs"
	"depot-route-service/internal/ports"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// GenerateParams asks for synthetic locations instead of explicit points.
type GenerateParams struct {
	DepotCount       int
	DestinationCount int
	Seed             int64
}

// PlanRoutesRequest carries either explicit points or a GenerateParams.
type PlanRoutesRequest struct {
	Depots       []domain.Point
	Destinations []domain.Point
	Generate     *GenerateParams
}

// PlanDependencies are the optional collaborators of PlanRoutes.
// A nil Cache or Runs disables caching or archiving.
type PlanDependencies struct {
	Cache   ports.SolutionCache
	Runs    ports.RunRepository
	Workers int
	Now     func() time.Time
}

// PlanRoutes resolves the input, solves it (through the cache when one is
// configured) and archives the resulting run.
//
// Cache failures only cost a recomputation, so they are logged and skipped.
// Archive failures fail the request because the caller expects a durable ID.
func PlanRoutes(
	ctx context.Context,
	req PlanRoutesRequest,
	deps PlanDependencies,
) (_ *domain.Run, err error) {
	defer obs.Time(ctx, "plan.PlanRoutes")(&err)
	defer func() { metrics.PlansTotal.WithLabelValues(planOutcome(err)).Inc() }()

	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}

	run := &domain.Run{
		ID:           uuid.NewString(),
		CreatedAt:    now().UTC(),
		Depots:       req.Depots,
		Destinations: req.Destinations,
	}

	if req.Generate != nil {
		if len(req.Depots) > 0 || len(req.Destinations) > 0 {
			return nil, fmt.Errorf("plan routes: %w", &domain.InvalidInputError{
				Field:  "generate",
				Index:  -1,
				Reason: "explicit points and generation parameters are mutually exclusive",
			})
		}

		g := req.Generate
		run.Depots, run.Destinations, err = GenerateLocations(g.DepotCount, g.DestinationCount, g.Seed)
		if err != nil {
			return nil, fmt.Errorf("plan routes: generate locations: %w", err)
		}
		seed := g.Seed
		run.Seed = &seed
	}

	if err := validateInput(run.Depots, run.Destinations); err != nil {
		return nil, fmt.Errorf("plan routes: %w", err)
	}
	metrics.PlanDestinations.Observe(float64(len(run.Destinations)))

	key := SolutionKey(run.Depots, run.Destinations)

	if deps.Cache != nil {
		sol, ok, err := deps.Cache.Get(ctx, key)
		switch {
		case err != nil:
			log.Printf("req_id=%s solution cache read failed: %v", obs.RequestID(ctx), err)
		case ok && !solutionMatches(sol, run.Depots, run.Destinations):
			log.Printf("req_id=%s solution cache entry does not match input key=%s", obs.RequestID(ctx), key)
		case ok:
			run.Solution = sol
			run.Cached = true
		}
	}

	if run.Solution == nil {
		sol, err := SolveConcurrent(ctx, run.Depots, run.Destinations, deps.Workers)
		if err != nil {
			return nil, fmt.Errorf("plan routes: %w", err)
		}
		run.Solution = sol

		if deps.Cache != nil {
			if err := deps.Cache.Put(ctx, key, sol); err != nil {
				log.Printf("req_id=%s solution cache write failed: %v", obs.RequestID(ctx), err)
			}
		}
	}

	if deps.Runs != nil {
		if err := deps.Runs.SaveRun(ctx, run); err != nil {
			return nil, fmt.Errorf("plan routes: archive run: %w", err)
		}
	}

	return run, nil
}

// solutionMatches reports whether sol was computed for exactly these points.
// Cache keys are 64-bit hashes, so a hit is checked against the input.
func solutionMatches(sol *domain.Solution, depots, destinations []domain.Point) bool {
	if sol == nil || len(sol.Assignment) != len(destinations) || len(sol.Routes) != len(depots) {
		return false
	}

	seen := make([]bool, len(destinations))
	for i, r := range sol.Routes {
		if r.DepotID != i || r.Depot != depots[i] {
			return false
		}
		if len(r.Path) != tourLen(len(r.Visits)) || r.Path[0] != depots[i] || r.Path[len(r.Path)-1] != depots[i] {
			return false
		}
		for j, dest := range r.Visits {
			if dest < 0 || dest >= len(destinations) || seen[dest] || sol.Assignment[dest] != i {
				return false
			}
			if r.Path[j+1] != destinations[dest] {
				return false
			}
			seen[dest] = true
		}
	}

	for _, ok := range seen {
		if !ok {
			return false
		}
	}
	return true
}

func tourLen(visits int) int {
	if visits == 0 {
		return 1
	}
	return visits + 2
}

func planOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "error"
	}
}

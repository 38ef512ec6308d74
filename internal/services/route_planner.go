package services

import (
	"context"
	"depot-route-service/internal/domain"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Solve assigns every destination to its nearest depot and builds one greedy
// nearest-neighbor tour per depot.
//
// The solution holds exactly one route per depot, in depot ID order, including
// depots that received no destinations. Every destination appears in exactly
// one route. Solve keeps no state between calls and is safe for concurrent use.
func Solve(depots, destinations []domain.Point) (*domain.Solution, error) {
	if err := validateInput(depots, destinations); err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	assignment := assignNearest(destinations, depots)
	groups := groupByDepot(assignment, len(depots))

	routes := make([]domain.Route, len(depots))
	for _, d := range domain.NewDepots(depots) {
		routes[d.ID] = planDepotRoute(d, destinations, groups[d.ID], NewLinearScan)
	}

	return &domain.Solution{Assignment: assignment, Routes: routes}, nil
}

// SolveConcurrent produces the same solution as Solve but builds the per-depot
// routes on up to workers goroutines.
//
// Depots own disjoint destination sets, so the builds share nothing. The call
// is all-or-nothing: a cancelled context returns an error and no solution.
func SolveConcurrent(
	ctx context.Context,
	depots []domain.Point,
	destinations []domain.Point,
	workers int,
) (*domain.Solution, error) {
	if err := validateInput(depots, destinations); err != nil {
		return nil, fmt.Errorf("solve concurrent: %w", err)
	}
	if workers < 1 {
		workers = 1
	}

	assignment := assignNearest(destinations, depots)
	groups := groupByDepot(assignment, len(depots))

	routes := make([]domain.Route, len(depots))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, d := range domain.NewDepots(depots) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Each goroutine writes only its own slot.
			routes[d.ID] = planDepotRoute(d, destinations, groups[d.ID], NewLinearScan)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("solve concurrent: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("solve concurrent: %w", err)
	}

	return &domain.Solution{Assignment: assignment, Routes: routes}, nil
}

func validateInput(depots, destinations []domain.Point) error {
	if err := domain.ValidateDepots(depots); err != nil {
		return err
	}
	return domain.ValidatePoints("destinations", destinations)
}

// planDepotRoute builds one depot's tour over its assigned destinations,
// passed in original input order, and maps the visit order back to global
// destination indices.
func planDepotRoute(
	depot domain.Depot,
	destinations []domain.Point,
	assigned []int,
	newFinder NewFinderFunc,
) domain.Route {
	subset := make([]domain.Point, len(assigned))
	for i, destIdx := range assigned {
		subset[i] = destinations[destIdx]
	}

	order := visitOrder(depot.Location, subset, newFinder)

	visits := make([]int, len(order))
	for i, local := range order {
		visits[i] = assigned[local]
	}

	return domain.Route{
		DepotID: depot.ID,
		Depot:   depot.Location,
		Path:    tourPath(depot.Location, subset, order),
		Visits:  visits,
	}
}

package services

import (
	"depot-route-service/internal/domain"
	"depot-route-service/internal/geometry"
	"fmt"
)

// AssignToNearestDepot returns, for every destination, the ID of its closest depot.
//
// The result has one entry per destination, each in [0, len(depots)).
// Equidistant depots resolve to the lowest ID so the assignment is
// reproducible for a given input order. Capacity is not considered.
func AssignToNearestDepot(destinations, depots []domain.Point) ([]int, error) {
	if err := domain.ValidateDepots(depots); err != nil {
		return nil, fmt.Errorf("assign depots: %w", err)
	}
	if err := domain.ValidatePoints("destinations", destinations); err != nil {
		return nil, fmt.Errorf("assign depots: %w", err)
	}

	return assignNearest(destinations, depots), nil
}

// assignNearest expects validated input with at least one depot.
func assignNearest(destinations, depots []domain.Point) []int {
	assignment := make([]int, len(destinations))
	if len(destinations) == 0 {
		return assignment
	}

	dists := geometry.PairwiseDistances(destinations, depots)
	for i, row := range dists {
		assignment[i] = geometry.ArgMin(row)
	}

	return assignment
}

// groupByDepot lists destination indices per depot, keeping input order.
func groupByDepot(assignment []int, depotCount int) [][]int {
	groups := make([][]int, depotCount)
	for destIdx, depotID := range assignment {
		groups[depotID] = append(groups[depotID], destIdx)
	}
	return groups
}

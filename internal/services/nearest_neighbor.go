package services

import (
	"depot-route-service/internal/domain"
	"depot-route-service/internal/geometry"
)

// NearestFinder locates the closest not-yet-visited candidate.
//
// Implementations must break distance ties by the smallest candidate index so
// tours stay reproducible. The linear scan is the default; a spatial index can
// replace it without changing tour assembly.
type NearestFinder interface {
	// Return the index of the unvisited candidate closest to from,
	// or false when every candidate has been visited.
	Nearest(from domain.Point) (int, bool)
	// Mark a candidate as visited.
	Visit(idx int)
}

// NewFinderFunc builds a finder over one depot's candidate points.
type NewFinderFunc func(candidates []domain.Point) NearestFinder

// linearScan rescans every remaining candidate on each query, O(k) per step.
type linearScan struct {
	candidates []domain.Point
	visited    []bool
	remaining  int
}

func NewLinearScan(candidates []domain.Point) NearestFinder {
	return &linearScan{
		candidates: candidates,
		visited:    make([]bool, len(candidates)),
		remaining:  len(candidates),
	}
}

func (s *linearScan) Nearest(from domain.Point) (int, bool) {
	if s.remaining == 0 {
		return -1, false
	}

	dists := geometry.DistancesFrom(from, s.candidates)

	best := -1
	// Ascending scan with strict < keeps the smallest index on ties.
	for i, d := range dists {
		if s.visited[i] {
			continue
		}
		if best == -1 || d < dists[best] {
			best = i
		}
	}

	return best, true
}

func (s *linearScan) Visit(idx int) {
	if !s.visited[idx] {
		s.visited[idx] = true
		s.remaining--
	}
}

// BuildRoute orders destinations with a greedy nearest-neighbor heuristic.
//
// The tour leaves start, repeatedly moves to the closest unvisited destination
// and finally returns to start, so the result has len(destinations)+2 points.
// With no destinations the result is just [start]. The tour is not optimal and
// may contain crossing legs.
func BuildRoute(start domain.Point, destinations []domain.Point) []domain.Point {
	order := visitOrder(start, destinations, NewLinearScan)
	return tourPath(start, destinations, order)
}

// visitOrder returns destination indices in greedy visiting order.
func visitOrder(start domain.Point, destinations []domain.Point, newFinder NewFinderFunc) []int {
	if len(destinations) == 0 {
		return nil
	}

	finder := newFinder(destinations)
	order := make([]int, 0, len(destinations))
	current := start

	for {
		next, ok := finder.Nearest(current)
		if !ok {
			break
		}
		finder.Visit(next)
		order = append(order, next)
		current = destinations[next]
	}

	return order
}

// tourPath closes the visiting order into a depot-to-depot path.
func tourPath(start domain.Point, destinations []domain.Point, order []int) []domain.Point {
	if len(order) == 0 {
		return []domain.Point{start}
	}

	path := make([]domain.Point, 0, len(order)+2)
	path = append(path, start)
	for _, idx := range order {
		path = append(path, destinations[idx])
	}
	// Explicit return leg to the depot.
	path = append(path, start)

	return path
}

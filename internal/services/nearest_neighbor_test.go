package services

import (
	"depot-route-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRouteGreedyOrder(t *testing.T) {
	start := domain.Point{X: 0, Y: 0}
	destinations := []domain.Point{{X: 10, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}

	route := BuildRoute(start, destinations)

	want := []domain.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 0}}
	assert.Equal(t, want, route)
}

func TestBuildRouteNoDestinations(t *testing.T) {
	start := domain.Point{X: 4, Y: 2}

	route := BuildRoute(start, nil)

	assert.Equal(t, []domain.Point{start}, route)
}

func TestBuildRouteSingleDestination(t *testing.T) {
	start := domain.Point{X: 0, Y: 0}
	dest := domain.Point{X: 3, Y: 4}

	route := BuildRoute(start, []domain.Point{dest})

	assert.Equal(t, []domain.Point{start, dest, start}, route)
}

func TestBuildRouteTieBreaksBySmallestIndex(t *testing.T) {
	start := domain.Point{X: 0, Y: 0}
	// All four are at distance 1 from the start; index 0 must be visited first.
	destinations := []domain.Point{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}}

	order := visitOrder(start, destinations, NewLinearScan)

	require.Len(t, order, 4)
	assert.Equal(t, 0, order[0])
	// From (0,1): (1,0) and (-1,0) are both sqrt(2) away; index 1 wins.
	assert.Equal(t, 1, order[1])
}

func TestBuildRouteDuplicatePoints(t *testing.T) {
	start := domain.Point{X: 0, Y: 0}
	destinations := []domain.Point{{X: 2, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 1}}

	order := visitOrder(start, destinations, NewLinearScan)

	assert.Equal(t, []int{2, 0, 1}, order)
	assert.Len(t, BuildRoute(start, destinations), len(destinations)+2)
}

func TestBuildRouteVisitsEachDestinationOnce(t *testing.T) {
	start := domain.Point{X: 50, Y: 50}
	destinations := []domain.Point{
		{X: 10, Y: 90}, {X: 70, Y: 20}, {X: 55, Y: 48}, {X: 0, Y: 0},
		{X: 99, Y: 99}, {X: 30, Y: 60}, {X: 51, Y: 51},
	}

	order := visitOrder(start, destinations, NewLinearScan)

	require.Len(t, order, len(destinations))
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6}, order)

	path := BuildRoute(start, destinations)
	assert.Equal(t, start, path[0])
	assert.Equal(t, start, path[len(path)-1])
}

func TestLinearScanExhausted(t *testing.T) {
	finder := NewLinearScan([]domain.Point{{X: 1, Y: 1}})

	idx, ok := finder.Nearest(domain.Point{})
	require.True(t, ok)
	finder.Visit(idx)
	// Visiting twice must not corrupt the remaining count.
	finder.Visit(idx)

	_, ok = finder.Nearest(domain.Point{})
	assert.False(t, ok)
}

func TestLinearScanSkipsVisited(t *testing.T) {
	finder := NewLinearScan([]domain.Point{{X: 1, Y: 0}, {X: 2, Y: 0}})
	from := domain.Point{X: 0, Y: 0}

	idx, ok := finder.Nearest(from)
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	finder.Visit(0)
	finder.Visit(0)
	idx, ok = finder.Nearest(from)
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	finder.Visit(1)
	_, ok = finder.Nearest(from)
	assert.False(t, ok)
}

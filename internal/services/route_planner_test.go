package services

import (
	"context"
	"depot-route-service/internal/domain"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveTwoDepots(t *testing.T) {
	depots := []domain.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	destinations := []domain.Point{
		{X: 9, Y: 0},  // 0 -> depot 1
		{X: 1, Y: 0},  // 1 -> depot 0
		{X: 5, Y: 0},  // 2 -> depot 0 (tie)
		{X: 12, Y: 0}, // 3 -> depot 1
		{X: 2, Y: 1},  // 4 -> depot 0
	}

	sol, err := Solve(depots, destinations)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 0, 0, 1, 0}, sol.Assignment)
	require.Len(t, sol.Routes, 2)

	r0 := sol.Routes[0]
	assert.Equal(t, 0, r0.DepotID)
	assert.Equal(t, []int{1, 4, 2}, r0.Visits)
	assert.Equal(t, []domain.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1}, {X: 5, Y: 0}, {X: 0, Y: 0}}, r0.Path)

	r1 := sol.Routes[1]
	assert.Equal(t, 1, r1.DepotID)
	assert.Equal(t, []int{0, 3}, r1.Visits)
	assert.Equal(t, []domain.Point{{X: 10, Y: 0}, {X: 9, Y: 0}, {X: 12, Y: 0}, {X: 10, Y: 0}}, r1.Path)
}

func TestSolveZeroDestinationDepot(t *testing.T) {
	depots := []domain.Point{{X: 0, Y: 0}, {X: 100, Y: 100}}
	destinations := []domain.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}

	sol, err := Solve(depots, destinations)
	require.NoError(t, err)

	empty := sol.Routes[1]
	assert.Equal(t, []domain.Point{{X: 100, Y: 100}}, empty.Path)
	assert.Empty(t, empty.Visits)
	assert.True(t, empty.IsEmpty())
}

func TestSolveNoDestinations(t *testing.T) {
	depots := []domain.Point{{X: 3, Y: 3}, {X: 4, Y: 4}, {X: 5, Y: 5}}

	sol, err := Solve(depots, nil)
	require.NoError(t, err)

	require.Len(t, sol.Routes, 3)
	for i, r := range sol.Routes {
		assert.Equal(t, []domain.Point{depots[i]}, r.Path)
	}
	assert.Empty(t, sol.Assignment)
}

func TestSolveRequiresDepots(t *testing.T) {
	_, err := Solve(nil, []domain.Point{{X: 1, Y: 1}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestSolveCoverageAndTourShape(t *testing.T) {
	depots, destinations, err := GenerateLocations(4, 60, 10)
	require.NoError(t, err)

	sol, err := Solve(depots, destinations)
	require.NoError(t, err)
	require.Len(t, sol.Routes, len(depots))

	seen := make(map[int]int)
	for id, r := range sol.Routes {
		assert.Equal(t, id, r.DepotID)
		assert.Equal(t, depots[id], r.Depot)

		if r.IsEmpty() {
			assert.Equal(t, []domain.Point{depots[id]}, r.Path)
			continue
		}

		k := len(r.Visits)
		require.Len(t, r.Path, k+2)
		assert.Equal(t, depots[id], r.Path[0])
		assert.Equal(t, depots[id], r.Path[k+1])

		for j, destIdx := range r.Visits {
			seen[destIdx]++
			assert.Equal(t, id, sol.Assignment[destIdx])
			assert.Equal(t, destinations[destIdx], r.Path[j+1])
		}
	}

	require.Len(t, seen, len(destinations))
	for destIdx, n := range seen {
		assert.Equal(t, 1, n, "destination %d visited %d times", destIdx, n)
	}
}

func TestSolveDeterministic(t *testing.T) {
	depots, destinations, err := GenerateLocations(3, 30, 42)
	require.NoError(t, err)

	first, err := Solve(depots, destinations)
	require.NoError(t, err)
	second, err := Solve(depots, destinations)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSolveConcurrentMatchesSolve(t *testing.T) {
	depots, destinations, err := GenerateLocations(8, 200, 7)
	require.NoError(t, err)

	want, err := Solve(depots, destinations)
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 3, 16} {
		got, err := SolveConcurrent(context.Background(), depots, destinations, workers)
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}

func TestSolveConcurrentCancelled(t *testing.T) {
	depots, destinations, err := GenerateLocations(3, 20, 1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sol, err := SolveConcurrent(ctx, depots, destinations, 2)
	assert.Nil(t, sol)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolveConcurrentRequiresDepots(t *testing.T) {
	_, err := SolveConcurrent(context.Background(), []domain.Point{}, nil, 2)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

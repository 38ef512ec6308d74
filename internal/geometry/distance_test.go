package geometry

import (
	"depot-route-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairwiseDistances(t *testing.T) {
	a := []domain.Point{{X: 0, Y: 0}, {X: 3, Y: 4}}
	b := []domain.Point{{X: 0, Y: 0}, {X: 6, Y: 8}, {X: 3, Y: 0}}

	m := PairwiseDistances(a, b)

	require.Len(t, m, 2)
	require.Len(t, m[0], 3)
	assert.InDelta(t, 0.0, m[0][0], 1e-12)
	assert.InDelta(t, 10.0, m[0][1], 1e-12)
	assert.InDelta(t, 3.0, m[0][2], 1e-12)
	assert.InDelta(t, 5.0, m[1][0], 1e-12)
	assert.InDelta(t, 5.0, m[1][1], 1e-12)
	assert.InDelta(t, 4.0, m[1][2], 1e-12)
}

func TestPairwiseDistancesSymmetric(t *testing.T) {
	pts := []domain.Point{{X: 1.5, Y: -2}, {X: 7, Y: 3.25}, {X: -4, Y: 9}}

	m := PairwiseDistances(pts, pts)
	for i := range pts {
		assert.Zero(t, m[i][i])
		for j := range pts {
			assert.Equal(t, m[i][j], m[j][i])
			assert.GreaterOrEqual(t, m[i][j], 0.0)
		}
	}
}

func TestPairwiseDistancesEmpty(t *testing.T) {
	pts := []domain.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}

	assert.Empty(t, PairwiseDistances(nil, pts))

	m := PairwiseDistances(pts, nil)
	require.Len(t, m, 2)
	for _, row := range m {
		assert.Empty(t, row)
	}
}

func TestPairwiseDistancesIdempotent(t *testing.T) {
	a := []domain.Point{{X: 12.3, Y: 45.6}, {X: 78.9, Y: 0.12}}
	b := []domain.Point{{X: 3.3, Y: 3.3}, {X: 99.9, Y: 1e-3}}

	assert.Equal(t, PairwiseDistances(a, b), PairwiseDistances(a, b))
}

func TestArgMinFirstWins(t *testing.T) {
	assert.Equal(t, -1, ArgMin(nil))
	assert.Equal(t, 1, ArgMin([]float64{5, 2, 2, 7}))
	assert.Equal(t, 0, ArgMin([]float64{3, 3, 3}))
}

func TestDistancesFrom(t *testing.T) {
	origin := domain.Point{X: 1, Y: 1}
	targets := []domain.Point{{X: 4, Y: 5}, {X: 1, Y: 1}, {X: 1, Y: -2}}

	got := DistancesFrom(origin, targets)

	require.Len(t, got, 3)
	assert.InDelta(t, 5.0, got[0], 1e-12)
	assert.Zero(t, got[1])
	assert.InDelta(t, 3.0, got[2], 1e-12)
	assert.Equal(t, PairwiseDistances([]domain.Point{origin}, targets)[0], got)
	assert.Empty(t, DistancesFrom(origin, nil))
}

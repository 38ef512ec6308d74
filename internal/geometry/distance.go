// Package geometry computes Euclidean distances between planar point sets.
package geometry

import "depot-route-service/internal/domain"

// PairwiseDistances returns the |a| x |b| matrix of Euclidean distances,
// where entry [i][j] is the distance from a[i] to b[j].
//
// An empty a yields a matrix with no rows; an empty b yields |a| empty rows.
// Callers must handle both shapes explicitly.
func PairwiseDistances(a, b []domain.Point) [][]float64 {
	out := make([][]float64, len(a))
	for i, p := range a {
		row := make([]float64, len(b))
		for j, q := range b {
			row[j] = p.DistanceTo(q)
		}
		out[i] = row
	}
	return out
}

// DistancesFrom returns the distance from origin to every point in targets.
func DistancesFrom(origin domain.Point, targets []domain.Point) []float64 {
	return PairwiseDistances([]domain.Point{origin}, targets)[0]
}

// ArgMin returns the index of the smallest value, the first one on ties,
// or -1 for an empty slice.
func ArgMin(values []float64) int {
	best := -1
	for i, v := range values {
		if best == -1 || v < values[best] {
			best = i
		}
	}
	return best
}

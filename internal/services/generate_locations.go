package services

import (
	"depot-route-service/internal/domain"
	"fmt"
	"math/rand/v2"
)

// GridSize is the side length of the square synthetic locations are drawn from.
const GridSize = 100.0

// GenerateLocations draws depot and destination points uniformly from
// [0, GridSize)². Depots are drawn first, then destinations, from a single
// stream seeded with seed, so the same arguments always produce the same input.
func GenerateLocations(depotCount, destinationCount int, seed int64) ([]domain.Point, []domain.Point, error) {
	if depotCount < 1 {
		return nil, nil, &domain.InvalidInputError{
			Field:  "depot_count",
			Index:  -1,
			Reason: fmt.Sprintf("must be at least 1, got %d", depotCount),
		}
	}
	if destinationCount < 0 {
		return nil, nil, &domain.InvalidInputError{
			Field:  "destination_count",
			Index:  -1,
			Reason: fmt.Sprintf("must not be negative, got %d", destinationCount),
		}
	}

	rng := rand.New(rand.NewPCG(uint64(seed), 0))

	draw := func(n int) []domain.Point {
		pts := make([]domain.Point, n)
		for i := range pts {
			pts[i] = domain.Point{X: rng.Float64() * GridSize, Y: rng.Float64() * GridSize}
		}
		return pts
	}

	depots := draw(depotCount)
	destinations := draw(destinationCount)

	return depots, destinations, nil
}

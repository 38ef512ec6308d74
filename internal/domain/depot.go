package domain

// Dispatch point a route starts from and returns to.
// ID is the depot's 0-based position in the input and is stable for a run.
type Depot struct {
	ID       int
	Location Point
}

// NewDepots numbers depot locations in input order.
func NewDepots(locations []Point) []Depot {
	depots := make([]Depot, 0, len(locations))
	for i, loc := range locations {
		depots = append(depots, Depot{ID: i, Location: loc})
	}
	return depots
}

package domain

// Represents one visit on a route as the presentation layer numbers it.
// Step is 1-based; the return leg to the depot is never numbered.
type Step struct {
	Number      int
	Destination int
	Location    Point
}

// Represents the closed tour of a single depot.
//
// Path starts and ends at the depot and visits every assigned destination
// once in between, so len(Path) == len(Visits)+2. A depot without
// destinations has Path == [depot] and no Visits.
// Visits holds the original destination indices in visiting order.
type Route struct {
	DepotID int     `json:"depot_id"`
	Depot   Point   `json:"depot"`
	Path    []Point `json:"path"`
	Visits  []int   `json:"visits"`
}

// Steps labels the j-th interior destination as visit step j.
func (r Route) Steps() []Step {
	steps := make([]Step, 0, len(r.Visits))
	for j, dest := range r.Visits {
		steps = append(steps, Step{
			Number:      j + 1,
			Destination: dest,
			Location:    r.Path[j+1],
		})
	}
	return steps
}

// Length returns the total travel distance along Path, return leg included.
func (r Route) Length() float64 {
	total := 0.0
	for i := 1; i < len(r.Path); i++ {
		total += r.Path[i-1].DistanceTo(r.Path[i])
	}
	return total
}

// IsEmpty reports whether the depot has nothing to visit.
func (r Route) IsEmpty() bool { return len(r.Visits) == 0 }

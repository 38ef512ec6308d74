package domain

import "time"

// Run is an archived routing request together with its solution.
// Seed is set only when the locations were generated synthetically.
type Run struct {
	ID           string
	CreatedAt    time.Time
	Seed         *int64
	Depots       []Point
	Destinations []Point
	Solution     *Solution
	Cached       bool
}

// RunSummary is the listing view of an archived run.
type RunSummary struct {
	ID               string
	CreatedAt        time.Time
	Seed             *int64
	DepotCount       int
	DestinationCount int
	TotalLength      float64
}

// Summary condenses a run for listings.
func (r *Run) Summary() RunSummary {
	s := RunSummary{
		ID:               r.ID,
		CreatedAt:        r.CreatedAt,
		Seed:             r.Seed,
		DepotCount:       len(r.Depots),
		DestinationCount: len(r.Destinations),
	}
	if r.Solution != nil {
		s.TotalLength = r.Solution.TotalLength()
	}
	return s
}

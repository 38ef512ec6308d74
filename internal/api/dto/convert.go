package dto

import "depot-route-service/internal/domain"

func toPoints(pts []domain.Point) []PointResponse {
	out := make([]PointResponse, 0, len(pts))
	for _, p := range pts {
		out = append(out, PointResponse{X: p.X, Y: p.Y})
	}
	return out
}

// NewRunResponse flattens a run into its wire form.
func NewRunResponse(run *domain.Run) RunResponse {
	res := RunResponse{
		RunID:        run.ID,
		CreatedAt:    run.CreatedAt,
		Seed:         run.Seed,
		Cached:       run.Cached,
		Depots:       toPoints(run.Depots),
		Destinations: toPoints(run.Destinations),
		Assignment:   []int{},
		Routes:       []RouteResponse{},
	}
	if run.Solution == nil {
		return res
	}

	if run.Solution.Assignment != nil {
		res.Assignment = run.Solution.Assignment
	}
	res.TotalLength = run.Solution.TotalLength()

	for _, r := range run.Solution.Routes {
		steps := make([]StepResponse, 0, len(r.Visits))
		for _, s := range r.Steps() {
			steps = append(steps, StepResponse{
				Step:        s.Number,
				Destination: s.Destination,
				Location:    PointResponse{X: s.Location.X, Y: s.Location.Y},
			})
		}

		res.Routes = append(res.Routes, RouteResponse{
			DepotID: r.DepotID,
			Depot:   PointResponse{X: r.Depot.X, Y: r.Depot.Y},
			Path:    toPoints(r.Path),
			Steps:   steps,
			Length:  r.Length(),
		})
	}

	return res
}

func NewRunSummaryResponse(s domain.RunSummary) RunSummaryResponse {
	return RunSummaryResponse{
		RunID:            s.ID,
		CreatedAt:        s.CreatedAt,
		Seed:             s.Seed,
		DepotCount:       s.DepotCount,
		DestinationCount: s.DestinationCount,
		TotalLength:      s.TotalLength,
	}
}

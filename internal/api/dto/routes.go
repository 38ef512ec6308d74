package dto

import "time"

type PointRequest struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// RoutesRequest accepts explicit points or generation parameters, not both.
type RoutesRequest struct {
	Depots           []PointRequest `json:"depots"`
	Destinations     []PointRequest `json:"destinations"`
	DepotCount       *int           `json:"depot_count"`
	DestinationCount *int           `json:"destination_count"`
	Seed             *int64         `json:"seed"`
}

type PointResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type StepResponse struct {
	Step        int           `json:"step"`
	Destination int           `json:"destination"`
	Location    PointResponse `json:"location"`
}

type RouteResponse struct {
	DepotID int             `json:"depot_id"`
	Depot   PointResponse   `json:"depot"`
	Path    []PointResponse `json:"path"`
	Steps   []StepResponse  `json:"steps"`
	Length  float64         `json:"length"`
}

type RunResponse struct {
	RunID        string          `json:"run_id"`
	CreatedAt    time.Time       `json:"created_at"`
	Seed         *int64          `json:"seed,omitempty"`
	Cached       bool            `json:"cached"`
	Depots       []PointResponse `json:"depots"`
	Destinations []PointResponse `json:"destinations"`
	Assignment   []int           `json:"assignment"`
	Routes       []RouteResponse `json:"routes"`
	TotalLength  float64         `json:"total_length"`
}

type RunSummaryResponse struct {
	RunID            string    `json:"run_id"`
	CreatedAt        time.Time `json:"created_at"`
	Seed             *int64    `json:"seed,omitempty"`
	DepotCount       int       `json:"depot_count"`
	DestinationCount int       `json:"destination_count"`
	TotalLength      float64   `json:"total_length"`
}

type ListRunsResponse struct {
	Runs []RunSummaryResponse `json:"runs"`
}

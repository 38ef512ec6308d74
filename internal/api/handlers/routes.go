package handlers

import (
	"context"
	"depot-route-service/internal/api/dto"
	"depot-route-service/internal/domain"
	"depot-route-service/internal/platform/obs"
	"depot-route-service/internal/ports"
	"depot-route-service/internal/services"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"
)

type RoutesHandler struct {
	Runs            ports.RunRepository
	Cache           ports.SolutionCache
	MaxDepots       int
	MaxDestinations int
	Workers         int
	Timeout         time.Duration
}

// Create validates the request, plans one route per depot and returns the archived run.
func (h *RoutesHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.RoutesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	svcReq, err := h.toServiceRequest(req)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	run, err := services.PlanRoutes(ctx, svcReq, services.PlanDependencies{
		Cache:   h.Cache,
		Runs:    h.Runs,
		Workers: h.Workers,
	})
	if err != nil {
		var invalid *domain.InvalidInputError
		switch {
		case errors.As(err, &invalid):
			writeError(w, r, http.StatusBadRequest, invalid.Error())
		case errors.Is(err, context.DeadlineExceeded):
			writeError(w, r, http.StatusServiceUnavailable, "route planning timed out")
		default:
			log.Printf("req_id=%s plan routes failed: %v", obs.RequestID(r.Context()), err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.NewRunResponse(run))
}

func (h *RoutesHandler) toServiceRequest(req dto.RoutesRequest) (services.PlanRoutesRequest, error) {
	generate := req.DepotCount != nil || req.DestinationCount != nil || req.Seed != nil
	explicit := len(req.Depots) > 0 || len(req.Destinations) > 0

	switch {
	case generate && explicit:
		return services.PlanRoutesRequest{}, errors.New("provide either points or depot_count/destination_count/seed, not both")
	case generate:
		if req.DepotCount == nil || req.DestinationCount == nil || req.Seed == nil {
			return services.PlanRoutesRequest{}, errors.New("depot_count, destination_count and seed are all required")
		}
		if err := h.checkCounts(*req.DepotCount, *req.DestinationCount); err != nil {
			return services.PlanRoutesRequest{}, err
		}
		return services.PlanRoutesRequest{Generate: &services.GenerateParams{
			DepotCount:       *req.DepotCount,
			DestinationCount: *req.DestinationCount,
			Seed:             *req.Seed,
		}}, nil
	}

	if err := h.checkCounts(len(req.Depots), len(req.Destinations)); err != nil {
		return services.PlanRoutesRequest{}, err
	}

	depots, err := toDomainPoints("depots", req.Depots)
	if err != nil {
		return services.PlanRoutesRequest{}, err
	}
	destinations, err := toDomainPoints("destinations", req.Destinations)
	if err != nil {
		return services.PlanRoutesRequest{}, err
	}

	return services.PlanRoutesRequest{Depots: depots, Destinations: destinations}, nil
}

func (h *RoutesHandler) checkCounts(depots, destinations int) error {
	if err := checkRange("depot count", depots, 1, h.MaxDepots); err != nil {
		return err
	}
	return checkRange("destination count", destinations, 0, h.MaxDestinations)
}

// checkRange enforces lo <= n <= hi; hi <= 0 means no upper bound.
func checkRange(name string, n, lo, hi int) error {
	if hi <= 0 {
		if n < lo {
			return fmt.Errorf("%s must be at least %d", name, lo)
		}
		return nil
	}
	if n < lo || n > hi {
		return fmt.Errorf("%s must be between %d and %d", name, lo, hi)
	}
	return nil
}

func toDomainPoints(field string, in []dto.PointRequest) ([]domain.Point, error) {
	out := make([]domain.Point, 0, len(in))
	for i, p := range in {
		if p.X == nil || p.Y == nil {
			return nil, fmt.Errorf("%s[%d]: x and y are required", field, i)
		}
		out = append(out, domain.Point{X: *p.X, Y: *p.Y})
	}
	return out, nil
}

package handlers

import (
	"depot-route-service/internal/api/dto"
	"depot-route-service/internal/ports"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
)

const maxListLimit = 100

// RunsHandler exposes read-only access to archived runs.
type RunsHandler struct {
	Runs ports.RunRepository
}

func (h *RunsHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxListLimit {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	runs, err := h.Runs.ListRuns(r.Context(), limit)
	if err != nil {
		log.Printf("list runs failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListRunsResponse{Runs: make([]dto.RunSummaryResponse, 0, len(runs))}
	for _, s := range runs {
		res.Runs = append(res.Runs, dto.NewRunSummaryResponse(s))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *RunsHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "run id is required")
		return
	}

	run, err := h.Runs.GetRun(r.Context(), id)
	if errors.Is(err, ports.ErrRunNotFound) {
		writeError(w, r, http.StatusNotFound, "run not found")
		return
	}
	if err != nil {
		log.Printf("get run failed: id=%s err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewRunResponse(run))
}

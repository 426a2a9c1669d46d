package handlers

import (
	"encoding/json"
	"errors"
	"fleet-cargo-service/internal/adapters/events"
	"fleet-cargo-service/internal/api/dto"
	"fleet-cargo-service/internal/domain"
	"fleet-cargo-service/internal/ports"
	"fleet-cargo-service/internal/services"
	"io"
	"net/http"
)

type CheckHandler struct {
	Repo ports.VehicleRepository
	Sink domain.EventSink
}

// Create runs a one-off feasibility check of the stored fleet.
func (h *CheckHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.CheckRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if req.Path == nil {
		writeError(w, r, http.StatusBadRequest, "path is required")
		return
	}
	if *req.Path < 0 {
		writeError(w, r, http.StatusBadRequest, "path must not be negative")
		return
	}

	items := make([]services.CargoItem, 0, len(req.Cargo))
	for _, c := range req.Cargo {
		items = append(items, services.CargoItem{Description: c.Description, Weight: c.Weight, Type: c.Type})
	}
	cargo, err := services.BuildCargo(items)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNonPositiveWeight):
			writeError(w, r, http.StatusBadRequest, "cargo weight must be greater than 0")
		case errors.Is(err, domain.ErrUnknownCargoType):
			writeError(w, r, http.StatusBadRequest, "unknown cargo type")
		default:
			writeError(w, r, http.StatusBadRequest, "invalid cargo")
		}
		return
	}

	verdict, err := services.CheckRoute(r.Context(), services.CheckRouteRequest{Path: *req.Path, Cargo: cargo}, h.Repo, h.Sink)
	if err != nil {
		logFailure(r, "check route failed", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.CheckResponse{
		CheckID:  verdict.CheckID.String(),
		Path:     verdict.Path,
		Feasible: verdict.Feasible,
		Loads:    make([]dto.VehicleLoadResponse, 0, len(verdict.Loads)),
		Events:   make([]dto.EventResponse, 0, len(verdict.Events)),
	}
	for _, l := range verdict.Loads {
		res.Loads = append(res.Loads, dto.VehicleLoadResponse{
			Vehicle:       l.Vehicle,
			CurrentLoad:   l.CurrentLoad,
			TrailerLoad:   l.TrailerLoad,
			TotalCapacity: l.TotalCapacity,
			MaxDistance:   l.MaxDistance,
		})
	}
	for _, e := range verdict.Events {
		res.Events = append(res.Events, dto.EventResponse{Type: e.Type(), Message: e.String(), Data: events.Fields(e)})
	}

	writeJSON(w, r, http.StatusOK, res)
}

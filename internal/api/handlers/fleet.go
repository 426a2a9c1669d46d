package handlers

import (
	"fleet-cargo-service/internal/api/dto"
	"fleet-cargo-service/internal/ports"
	"fleet-cargo-service/internal/services"
	"net/http"
)

// FleetHandler exposes read-only fleet composition.
type FleetHandler struct {
	Repo ports.VehicleRepository
}

func (h *FleetHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	summary, err := services.DescribeFleet(r.Context(), h.Repo)
	if err != nil {
		logFailure(r, "describe fleet failed", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.FleetResponse{
		TotalCapacity:    summary.Info.TotalCapacity,
		TotalCurrentLoad: summary.Info.TotalCurrentLoad,
		Vehicles:         make([]dto.VehicleResponse, 0, len(summary.Vehicles)),
	}
	for _, v := range summary.Vehicles {
		vr := dto.VehicleResponse{
			Name:              v.Vehicle.Vehicle,
			AllowedCargoTypes: v.Vehicle.AllowedTypes.Codes(),
			Capacity:          v.Vehicle.Capacity,
			MaxDistance:       v.MaxDistance,
			Summary:           v.Vehicle.String(),
		}
		if t := v.Vehicle.Trailer; t != nil {
			codes := t.AllowedTypes.Codes()
			if codes == nil {
				codes = []string{}
			}
			vr.Trailer = &dto.TrailerResponse{Capacity: t.Capacity, AllowedCargoTypes: codes}
		}
		res.Vehicles = append(res.Vehicles, vr)
	}

	writeJSON(w, r, http.StatusOK, res)
}

package events

import "fleet-cargo-service/internal/domain"

// Fields flattens an event into key/value pairs for logs and message payloads.
func Fields(e domain.Event) map[string]any {
	f := map[string]any{"event": e.Type()}

	switch ev := e.(type) {
	case domain.VehicleAdded:
		f["vehicle"] = ev.Vehicle
		f["capacity"] = ev.Capacity
		f["allowed_cargo_types"] = ev.AllowedTypes.Codes()
		if ev.Trailer != nil {
			f["trailer_capacity"] = ev.Trailer.Capacity
			f["trailer_allowed_cargo_types"] = ev.Trailer.AllowedTypes.Codes()
		}
	case domain.CargoLoaded:
		f["vehicle"] = ev.Vehicle
		f["compartment"] = string(ev.Compartment)
		f["cargo"] = ev.Description
		f["weight"] = ev.Weight
		f["cargo_type"] = ev.CargoType.Code()
	case domain.CargoRejected:
		f["vehicle"] = ev.Vehicle
		f["reason"] = string(ev.Reason)
		if ev.Reason != domain.ReasonNoCargo {
			f["cargo"] = ev.Description
			f["weight"] = ev.Weight
			f["cargo_type"] = ev.CargoType.Code()
		}
	case domain.CargoUnloaded:
		f["vehicle"] = ev.Vehicle
	case domain.RouteCheckStarted:
		f["path"] = ev.Path
		f["cargo_count"] = ev.CargoCount
	case domain.CargoUnplaced:
		f["cargo"] = ev.Description
		f["cargo_type"] = ev.CargoType.Code()
	case domain.RangeExceeded:
		f["vehicle"] = ev.Vehicle
		f["path"] = ev.Path
		f["max_distance"] = ev.MaxDistance
	case domain.RouteChecked:
		f["path"] = ev.Path
		f["feasible"] = ev.Feasible
	}

	return f
}

package services

import (
	"fleet-cargo-service/internal/domain"
	"fleet-cargo-service/internal/ports"
	"fmt"
	"strings"
)

// CargoItem is an unvalidated cargo description from an outer surface.
type CargoItem struct {
	Description string
	Weight      int
	Type        string
}

// BuildCargo validates and converts items in order; the first invalid item fails the batch.
func BuildCargo(items []CargoItem) ([]*domain.Cargo, error) {
	out := make([]*domain.Cargo, 0, len(items))
	for i, item := range items {
		ct, err := domain.ParseCargoType(item.Type)
		if err != nil {
			return nil, fmt.Errorf("build cargo: item %d: %w", i+1, err)
		}
		c, err := domain.NewCargo(strings.TrimSpace(item.Description), item.Weight, ct)
		if err != nil {
			return nil, fmt.Errorf("build cargo: item %d: %w", i+1, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// BuildFleet constructs a fresh fleet from stored records, in record order.
// Every carrier and the fleet itself report to sink.
func BuildFleet(records []ports.VehicleRecord, sink domain.EventSink) (*domain.Fleet, error) {
	fleet := domain.NewFleet(sink)

	for _, r := range records {
		carrier, err := newCarrier(r, sink)
		if err != nil {
			return nil, fmt.Errorf("build fleet: vehicle_id=%d: %w", r.ID, err)
		}
		fleet.AddVehicle(carrier)
	}

	return fleet, nil
}

func newCarrier(r ports.VehicleRecord, sink domain.EventSink) (domain.Carrier, error) {
	switch r.Kind {
	case ports.KindVehicle:
		if err := r.Spec.VehicleSpec.Validate(); err != nil {
			return nil, err
		}
		return domain.NewVehicle(r.Spec.VehicleSpec, sink), nil
	case ports.KindTruck:
		if err := r.Spec.Validate(); err != nil {
			return nil, err
		}
		return domain.NewTruck(r.Spec, sink), nil
	default:
		return nil, fmt.Errorf("unknown vehicle kind %q", r.Kind)
	}
}

package ports

import (
	"context"
	"fleet-cargo-service/internal/domain"
)

type VehicleKind string

const (
	KindVehicle VehicleKind = "vehicle"
	KindTruck   VehicleKind = "truck"
)

// Stored description of one fleet member. Plain vehicles use only Spec.VehicleSpec.
// Records are listed in priority order.
type VehicleRecord struct {
	ID   int
	Kind VehicleKind
	Spec domain.TruckSpec
}

// Port: a boundary for retrieving vehicle specs from a data source.
type VehicleRepository interface {
	// Retrieve every vehicle in fleet priority order.
	ListVehicles(ctx context.Context) ([]VehicleRecord, error)
}

// Port: a boundary for storing vehicle specs, used by seeding.
type VehicleWriter interface {
	SaveVehicles(ctx context.Context, records []VehicleRecord) error
}

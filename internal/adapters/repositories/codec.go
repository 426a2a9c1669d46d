package repositories

import (
	"database/sql"
	"fleet-cargo-service/internal/domain"
	"fleet-cargo-service/internal/ports"
	"fmt"
	"strings"
)

// Type sets are stored as comma-separated codes. NULL keeps a set undeclared,
// while an empty string is a declared set with no members.
func encodeTypes(s domain.CargoTypeSet) sql.NullString {
	if !s.Declared() {
		return sql.NullString{}
	}
	return sql.NullString{String: strings.Join(s.Codes(), ","), Valid: true}
}

func decodeTypes(v sql.NullString) (domain.CargoTypeSet, error) {
	if !v.Valid {
		return nil, nil
	}
	if strings.TrimSpace(v.String) == "" {
		return domain.AnyOf(), nil
	}
	return domain.ParseCargoTypeSet(strings.Split(v.String, ","))
}

func encodeTrailerCapacity(c *int) sql.NullInt64 {
	if c == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*c), Valid: true}
}

type vehicleRow struct {
	id               int
	kind             string
	make             string
	model            string
	year             int
	capacity         int
	fuelTankCapacity float64
	allowedTypes     sql.NullString
	trailerAttached  bool
	trailerCapacity  sql.NullInt64
	trailerTypes     sql.NullString
}

func (r vehicleRow) record() (ports.VehicleRecord, error) {
	allowed, err := decodeTypes(r.allowedTypes)
	if err != nil {
		return ports.VehicleRecord{}, fmt.Errorf("vehicle_id=%d allowed_cargo_types: %w", r.id, err)
	}

	rec := ports.VehicleRecord{
		ID:   r.id,
		Kind: ports.VehicleKind(r.kind),
		Spec: domain.TruckSpec{
			VehicleSpec: domain.VehicleSpec{
				Make:              r.make,
				Model:             r.model,
				Year:              r.year,
				Capacity:          r.capacity,
				FuelTankCapacity:  r.fuelTankCapacity,
				AllowedCargoTypes: allowed,
			},
		},
	}

	if rec.Kind != ports.KindTruck {
		return rec, nil
	}

	trailerTypes, err := decodeTypes(r.trailerTypes)
	if err != nil {
		return ports.VehicleRecord{}, fmt.Errorf("vehicle_id=%d trailer_allowed_cargo_types: %w", r.id, err)
	}
	rec.Spec.TrailerAttached = r.trailerAttached
	rec.Spec.TrailerAllowedCargoTypes = trailerTypes
	if r.trailerCapacity.Valid {
		c := int(r.trailerCapacity.Int64)
		rec.Spec.TrailerCapacity = &c
	}

	return rec, nil
}

func validateRecords(records []ports.VehicleRecord) error {
	for i, r := range records {
		if r.ID <= 0 {
			return fmt.Errorf("invalid vehicle_id at index %d: %d", i, r.ID)
		}
		switch r.Kind {
		case ports.KindVehicle:
			if err := r.Spec.VehicleSpec.Validate(); err != nil {
				return fmt.Errorf("vehicle_id=%d: %w", r.ID, err)
			}
		case ports.KindTruck:
			if err := r.Spec.Validate(); err != nil {
				return fmt.Errorf("vehicle_id=%d: %w", r.ID, err)
			}
		default:
			return fmt.Errorf("vehicle_id=%d: unknown kind %q", r.ID, r.Kind)
		}
	}
	return nil
}

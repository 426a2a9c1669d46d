package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fleet-cargo-service/internal/platform/obs"
	"fleet-cargo-service/internal/ports"
	"fmt"
)

// SQLVehicleRepository is the Postgres-backed vehicle store.
type SQLVehicleRepository struct {
	DB *sql.DB
}

func NewSQLVehicleRepository(db *sql.DB) *SQLVehicleRepository {
	return &SQLVehicleRepository{DB: db}
}

func (s *SQLVehicleRepository) ListVehicles(ctx context.Context) (_ []ports.VehicleRecord, err error) {
	defer obs.Time(ctx, "vehicles.ListVehicles")(&err)

	if s.DB == nil {
		return nil, errors.New("sql vehicle repository: db is nil")
	}

	q := `
	SELECT vehicle_id, kind, make, model, year, capacity, fuel_tank_capacity,
		allowed_cargo_types, trailer_attached, trailer_capacity, trailer_allowed_cargo_types
	FROM vehicles
	ORDER BY vehicle_id;
	`
	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: query vehicles table: %w", err)
	}
	defer rows.Close()

	return scanVehicles(rows)
}

func (s *SQLVehicleRepository) SaveVehicles(ctx context.Context, records []ports.VehicleRecord) (err error) {
	defer obs.Time(ctx, "vehicles.SaveVehicles")(&err)

	if s.DB == nil {
		return errors.New("sql vehicle repository: db is nil")
	}

	if err := validateRecords(records); err != nil {
		return fmt.Errorf("save vehicles: %w", err)
	}

	if len(records) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save vehicles: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO vehicles (vehicle_id, kind, make, model, year, capacity, fuel_tank_capacity,
		allowed_cargo_types, trailer_attached, trailer_capacity, trailer_allowed_cargo_types)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (vehicle_id) DO UPDATE
	SET kind = EXCLUDED.kind,
		make = EXCLUDED.make,
		model = EXCLUDED.model,
		year = EXCLUDED.year,
		capacity = EXCLUDED.capacity,
		fuel_tank_capacity = EXCLUDED.fuel_tank_capacity,
		allowed_cargo_types = EXCLUDED.allowed_cargo_types,
		trailer_attached = EXCLUDED.trailer_attached,
		trailer_capacity = EXCLUDED.trailer_capacity,
		trailer_allowed_cargo_types = EXCLUDED.trailer_allowed_cargo_types;
	`)
	if err != nil {
		return fmt.Errorf("save vehicles: db prepare: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx,
			r.ID,
			string(r.Kind),
			r.Spec.Make,
			r.Spec.Model,
			r.Spec.Year,
			r.Spec.Capacity,
			r.Spec.FuelTankCapacity,
			encodeTypes(r.Spec.AllowedCargoTypes),
			r.Spec.TrailerAttached,
			encodeTrailerCapacity(r.Spec.TrailerCapacity),
			encodeTypes(r.Spec.TrailerAllowedCargoTypes),
		); err != nil {
			return fmt.Errorf("save vehicles vehicle_id=%d: %w", r.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save vehicles commit: %w", err)
	}

	return nil
}

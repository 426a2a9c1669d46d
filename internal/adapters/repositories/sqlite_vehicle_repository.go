package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fleet-cargo-service/internal/ports"
	"fmt"
)

// SQLite-backed implementation of the VehicleRepository and VehicleWriter ports.
type SqliteVehicleRepository struct{ DB *sql.DB }

func NewSqliteVehicleRepository(db *sql.DB) *SqliteVehicleRepository {
	return &SqliteVehicleRepository{DB: db}
}

// Return all vehicles ordered by vehicle_id, which is fleet priority order.
func (s *SqliteVehicleRepository) ListVehicles(ctx context.Context) ([]ports.VehicleRecord, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite vehicle repository: DB is nil")
	}

	query := `
	SELECT
		vehicle_id,
		kind,
		make,
		model,
		year,
		capacity,
		fuel_tank_capacity,
		allowed_cargo_types,
		trailer_attached,
		trailer_capacity,
		trailer_allowed_cargo_types
	FROM vehicles
	ORDER BY vehicle_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: query vehicles table: %w", err)
	}
	defer rows.Close()

	return scanVehicles(rows)
}

// Insert or replace vehicles in a single transaction.
func (s *SqliteVehicleRepository) SaveVehicles(ctx context.Context, records []ports.VehicleRecord) error {
	if s.DB == nil {
		return errors.New("sqlite vehicle repository: DB is nil")
	}

	if err := validateRecords(records); err != nil {
		return fmt.Errorf("save vehicles: %w", err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save vehicles: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO vehicles (
		vehicle_id,
		kind,
		make,
		model,
		year,
		capacity,
		fuel_tank_capacity,
		allowed_cargo_types,
		trailer_attached,
		trailer_capacity,
		trailer_allowed_cargo_types
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("save vehicles: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		trailerAttached := 0
		if r.Spec.TrailerAttached {
			trailerAttached = 1
		}
		if _, err := stmt.ExecContext(ctx,
			r.ID,
			string(r.Kind),
			r.Spec.Make,
			r.Spec.Model,
			r.Spec.Year,
			r.Spec.Capacity,
			r.Spec.FuelTankCapacity,
			encodeTypes(r.Spec.AllowedCargoTypes),
			trailerAttached,
			encodeTrailerCapacity(r.Spec.TrailerCapacity),
			encodeTypes(r.Spec.TrailerAllowedCargoTypes),
		); err != nil {
			return fmt.Errorf("save vehicles: insert vehicle_id=%d: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save vehicles: commit tx: %w", err)
	}

	return nil
}

func scanVehicles(rows *sql.Rows) ([]ports.VehicleRecord, error) {
	records := make([]ports.VehicleRecord, 0, 16)
	for rows.Next() {
		var r vehicleRow
		err := rows.Scan(
			&r.id,
			&r.kind,
			&r.make,
			&r.model,
			&r.year,
			&r.capacity,
			&r.fuelTankCapacity,
			&r.allowedTypes,
			&r.trailerAttached,
			&r.trailerCapacity,
			&r.trailerTypes,
		)
		if err != nil {
			return nil, fmt.Errorf("list vehicles: scan row: %w", err)
		}

		rec, err := r.record()
		if err != nil {
			return nil, fmt.Errorf("list vehicles: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vehicles: row iteration: %w", err)
	}

	return records, nil
}

package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	return initSchema(db, []string{`
	CREATE TABLE IF NOT EXISTS vehicles (
		vehicle_id INTEGER PRIMARY KEY,
		kind TEXT NOT NULL CHECK (kind IN ('vehicle', 'truck')),
		make TEXT NOT NULL,
		model TEXT NOT NULL,
		year INTEGER NOT NULL,
		capacity INTEGER NOT NULL,
		fuel_tank_capacity REAL NOT NULL,
		allowed_cargo_types TEXT,
		trailer_attached INTEGER NOT NULL DEFAULT 0,
		trailer_capacity INTEGER,
		trailer_allowed_cargo_types TEXT
	);
	`})
}

// Initialize the Postgres database schema.
func InitPostgresSchema(db *sql.DB) error {
	return initSchema(db, []string{`
	CREATE TABLE IF NOT EXISTS vehicles (
		vehicle_id INTEGER PRIMARY KEY,
		kind TEXT NOT NULL CHECK (kind IN ('vehicle', 'truck')),
		make TEXT NOT NULL,
		model TEXT NOT NULL,
		year INTEGER NOT NULL,
		capacity INTEGER NOT NULL,
		fuel_tank_capacity DOUBLE PRECISION NOT NULL,
		allowed_cargo_types TEXT,
		trailer_attached BOOLEAN NOT NULL DEFAULT FALSE,
		trailer_capacity INTEGER,
		trailer_allowed_cargo_types TEXT
	);
	`})
}

func initSchema(db *sql.DB, statements []string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

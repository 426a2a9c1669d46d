package repositories

import (
	"database/sql"
	"fleet-cargo-service/internal/platform/db"
	"fleet-cargo-service/internal/ports"
	"fmt"
)

// Store is a vehicle repository that can also be written to.
type Store interface {
	ports.VehicleRepository
	ports.VehicleWriter
}

var (
	_ Store = (*SqliteVehicleRepository)(nil)
	_ Store = (*SQLVehicleRepository)(nil)
)

// OpenStore opens the database for driver ("sqlite" or "pgx"), ensures the
// schema exists and returns the matching store. The caller closes the DB.
func OpenStore(driver, dbPath, databaseURL string) (*sql.DB, Store, error) {
	switch driver {
	case "sqlite":
		conn, err := db.OpenSQLite(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
		if err := InitSchema(conn); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
		return conn, NewSqliteVehicleRepository(conn), nil
	case "pgx":
		conn, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
		if err := InitPostgresSchema(conn); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
		return conn, NewSQLVehicleRepository(conn), nil
	default:
		return nil, nil, fmt.Errorf("open store: unsupported driver %q", driver)
	}
}

package repositories

import (
	"context"
	"fleet-cargo-service/internal/platform/db"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integration test (requires a running Postgres).
func TestSQLVehicleRepositoryRoundTrip(t *testing.T) {
	url := os.Getenv("FLEET_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("FLEET_TEST_DATABASE_URL not set, skipping integration test")
	}

	conn, err := db.Open(url)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, InitPostgresSchema(conn))
	_, err = conn.Exec(`DELETE FROM vehicles`)
	require.NoError(t, err)

	repo := NewSQLVehicleRepository(conn)
	ctx := context.Background()

	want := sampleRecords()
	require.NoError(t, repo.SaveVehicles(ctx, want))
	require.NoError(t, repo.SaveVehicles(ctx, want))

	got, err := repo.ListVehicles(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSQLVehicleRepositoryNilDB(t *testing.T) {
	repo := NewSQLVehicleRepository(nil)
	_, err := repo.ListVehicles(context.Background())
	assert.Error(t, err)
	assert.Error(t, repo.SaveVehicles(context.Background(), sampleRecords()))
}

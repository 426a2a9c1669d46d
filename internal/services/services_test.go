package services

import (
	"context"
	"errors"
	"fleet-cargo-service/internal/domain"
	"fleet-cargo-service/internal/ports"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	records []ports.VehicleRecord
	err     error
}

func (f *fakeRepo) ListVehicles(ctx context.Context) ([]ports.VehicleRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func intPtr(v int) *int { return &v }

func referenceRecords() []ports.VehicleRecord {
	return []ports.VehicleRecord{
		{ID: 1, Kind: ports.KindVehicle, Spec: domain.TruckSpec{VehicleSpec: domain.VehicleSpec{
			Make: "Ford", Model: "Transit", Year: 2020, Capacity: 1000, FuelTankCapacity: 80,
			AllowedCargoTypes: domain.AnyOf(domain.Fragile(false), domain.Bulk(true)),
		}}},
		{ID: 2, Kind: ports.KindVehicle, Spec: domain.TruckSpec{VehicleSpec: domain.VehicleSpec{
			Make: "Skoda", Model: "Octavia", Year: 2019, Capacity: 300, FuelTankCapacity: 60,
		}}},
		{ID: 3, Kind: ports.KindTruck, Spec: domain.TruckSpec{
			VehicleSpec: domain.VehicleSpec{
				Make: "Volvo", Model: "FH16", Year: 2021, Capacity: 5000, FuelTankCapacity: 200,
				AllowedCargoTypes: domain.AnyOf(domain.Fragile(true), domain.Perishable(-10)),
			},
			TrailerAttached:          true,
			TrailerCapacity:          intPtr(2000),
			TrailerAllowedCargoTypes: domain.AnyOf(domain.Bulk(false)),
		}},
	}
}

func referenceItems() []CargoItem {
	return []CargoItem{
		{Description: "Musical instruments", Weight: 300, Type: "fragile:hardcase"},
		{Description: "Medicines", Weight: 200, Type: "perishable:-10"},
		{Description: "Sand", Weight: 1000, Type: "bulk"},
		{Description: "Cocoa beans", Weight: 50, Type: "bulk:bricks"},
	}
}

func TestBuildCargo(t *testing.T) {
	cargo, err := BuildCargo(referenceItems())
	require.NoError(t, err)
	require.Len(t, cargo, 4)

	assert.Equal(t, "Musical instruments", cargo[0].Description())
	assert.Equal(t, domain.Fragile(true), cargo[0].Type())
	assert.Equal(t, domain.Perishable(-10), cargo[1].Type())
	assert.Equal(t, 1000, cargo[2].Weight())
}

func TestBuildCargo_RejectsInvalidItems(t *testing.T) {
	_, err := BuildCargo([]CargoItem{{Description: "Air", Weight: 0, Type: "bulk"}})
	assert.ErrorIs(t, err, domain.ErrNonPositiveWeight)

	_, err = BuildCargo([]CargoItem{{Description: "Gas", Weight: 10, Type: "gaseous"}})
	assert.ErrorIs(t, err, domain.ErrUnknownCargoType)
}

func TestBuildFleet(t *testing.T) {
	var added []string
	sink := domain.EventSinkFunc(func(e domain.Event) { added = append(added, e.Type()) })

	fleet, err := BuildFleet(referenceRecords(), sink)
	require.NoError(t, err)

	require.Equal(t, 3, fleet.Len())
	vehicles := fleet.Vehicles()
	assert.IsType(t, &domain.Vehicle{}, vehicles[0])
	assert.IsType(t, &domain.Truck{}, vehicles[2])
	assert.Equal(t, []string{"VehicleAdded", "VehicleAdded", "VehicleAdded"}, added)
}

func TestBuildFleet_InvalidRecord(t *testing.T) {
	records := referenceRecords()
	records[1].Spec.Capacity = -1

	_, err := BuildFleet(records, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidSpec)

	_, err = BuildFleet([]ports.VehicleRecord{{ID: 9, Kind: "boat"}}, nil)
	assert.Error(t, err)
}

func TestCheckRoute_Feasible(t *testing.T) {
	cargo, err := BuildCargo(referenceItems())
	require.NoError(t, err)

	var forwarded []domain.Event
	sink := domain.EventSinkFunc(func(e domain.Event) { forwarded = append(forwarded, e) })

	verdict, err := CheckRoute(context.Background(),
		CheckRouteRequest{Path: 100, Cargo: cargo},
		&fakeRepo{records: referenceRecords()}, sink)
	require.NoError(t, err)

	assert.True(t, verdict.Feasible)
	assert.Equal(t, 100, verdict.Path)
	assert.NotEqual(t, uuid.Nil, verdict.CheckID)

	require.Len(t, verdict.Loads, 3)
	assert.Equal(t, VehicleLoad{Vehicle: "Ford Transit", CurrentLoad: 50, TotalCapacity: 1000, MaxDistance: 560}, verdict.Loads[0])
	assert.Equal(t, VehicleLoad{Vehicle: "Skoda Octavia", CurrentLoad: 300, TotalCapacity: 300, MaxDistance: 420}, verdict.Loads[1])
	assert.Equal(t, VehicleLoad{Vehicle: "Volvo FH16", CurrentLoad: 200, TrailerLoad: 1000, TotalCapacity: 7000, MaxDistance: 1400}, verdict.Loads[2])

	require.NotEmpty(t, verdict.Events)
	assert.Equal(t, "RouteCheckStarted", verdict.Events[0].Type())
	assert.Equal(t, domain.RouteChecked{Path: 100, Feasible: true}, verdict.Events[len(verdict.Events)-1])
	for _, e := range verdict.Events {
		assert.NotEqual(t, "VehicleAdded", e.Type())
		assert.NotEqual(t, "CargoUnloaded", e.Type())
	}

	// The outer sink sees composition and unloading as well.
	assert.Equal(t, "VehicleAdded", forwarded[0].Type())
	assert.Equal(t, "CargoUnloaded", forwarded[len(forwarded)-1].Type())
}

func TestCheckRoute_RangeExceeded(t *testing.T) {
	cargo, err := BuildCargo(referenceItems())
	require.NoError(t, err)

	verdict, err := CheckRoute(context.Background(),
		CheckRouteRequest{Path: 700, Cargo: cargo},
		&fakeRepo{records: referenceRecords()}, nil)
	require.NoError(t, err)

	assert.False(t, verdict.Feasible)
	assert.Contains(t, verdict.Events, domain.Event(domain.RangeExceeded{Vehicle: "Skoda Octavia", Path: 700, MaxDistance: 420}))
}

func TestCheckRoute_Unplaced(t *testing.T) {
	records := referenceRecords()[:2]
	cargo, err := BuildCargo(referenceItems())
	require.NoError(t, err)

	verdict, err := CheckRoute(context.Background(),
		CheckRouteRequest{Path: 10, Cargo: cargo},
		&fakeRepo{records: records}, nil)
	require.NoError(t, err)

	assert.False(t, verdict.Feasible)
	// Skoda accepts every type, so instruments land there before medicines overflow it.
	assert.Equal(t, 300, verdict.Loads[1].CurrentLoad)
}

func TestCheckRoute_EmptyCargo(t *testing.T) {
	verdict, err := CheckRoute(context.Background(),
		CheckRouteRequest{Path: 5000},
		&fakeRepo{records: referenceRecords()}, nil)
	require.NoError(t, err)
	assert.True(t, verdict.Feasible)
}

func TestCheckRoute_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := CheckRoute(ctx, CheckRouteRequest{Path: -1}, &fakeRepo{}, nil)
	assert.ErrorIs(t, err, ErrNegativePath)

	boom := errors.New("db down")
	_, err = CheckRoute(ctx, CheckRouteRequest{Path: 1}, &fakeRepo{err: boom}, nil)
	assert.ErrorIs(t, err, boom)
}

func TestCheckRoute_ConcurrentChecksAreIndependent(t *testing.T) {
	repo := &fakeRepo{records: referenceRecords()}
	cargo, err := BuildCargo(referenceItems())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]bool, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := CheckRoute(context.Background(), CheckRouteRequest{Path: 100, Cargo: cargo}, repo, nil)
			if err == nil {
				results[i] = v.Feasible
			}
		}(i)
	}
	wg.Wait()

	for _, ok := range results {
		assert.True(t, ok)
	}
}

func TestDescribeFleet(t *testing.T) {
	summary, err := DescribeFleet(context.Background(), &fakeRepo{records: referenceRecords()})
	require.NoError(t, err)

	assert.Equal(t, domain.FleetInfo{TotalCapacity: 6300, TotalCurrentLoad: 0, Vehicles: 3}, summary.Info)
	require.Len(t, summary.Vehicles, 3)
	assert.Equal(t, 420, summary.Vehicles[1].MaxDistance)
	require.NotNil(t, summary.Vehicles[2].Vehicle.Trailer)
	assert.Equal(t, 2000, summary.Vehicles[2].Vehicle.Trailer.Capacity)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleLoadCargo(t *testing.T) {
	sink := &recordingSink{}
	v := newReferenceVehicles(sink)
	c := newReferenceCargo(t)

	t.Run("unsupported type", func(t *testing.T) {
		sink.Reset()
		assert.False(t, v.ford.LoadCargo(c.instruments))
		assert.Equal(t, 0, v.ford.CurrentLoad())

		require.Len(t, sink.events, 1)
		rejected, ok := sink.events[0].(CargoRejected)
		require.True(t, ok)
		assert.Equal(t, ReasonUnsupportedType, rejected.Reason)
		assert.Equal(t, "'Ford Transit' can not handle 'fragile in hardcase' cargo", rejected.String())
	})

	t.Run("undeclared types accept everything", func(t *testing.T) {
		sink.Reset()
		assert.True(t, v.skoda.LoadCargo(c.cocoa))
		assert.True(t, v.skoda.LoadCargo(c.medicines))
		assert.Equal(t, 250, v.skoda.CurrentLoad())
		assert.Equal(t, []string{"CargoLoaded", "CargoLoaded"}, sink.types())
	})

	t.Run("overweight keeps earlier load", func(t *testing.T) {
		sink.Reset()
		assert.False(t, v.skoda.LoadCargo(c.instruments))
		assert.Equal(t, 250, v.skoda.CurrentLoad())

		rejected, ok := sink.last().(CargoRejected)
		require.True(t, ok)
		assert.Equal(t, ReasonOverweight, rejected.Reason)
	})

	t.Run("nil cargo", func(t *testing.T) {
		sink.Reset()
		assert.False(t, v.skoda.LoadCargo(nil))
		assert.Equal(t, 250, v.skoda.CurrentLoad())

		rejected, ok := sink.last().(CargoRejected)
		require.True(t, ok)
		assert.Equal(t, ReasonNoCargo, rejected.Reason)
	})

	t.Run("exact capacity fits", func(t *testing.T) {
		van := NewVehicle(VehicleSpec{Make: "Fiat", Model: "Ducato", Capacity: 300, FuelTankCapacity: 90}, nil)
		assert.True(t, van.LoadCargo(c.instruments))
		assert.Equal(t, van.Capacity(), van.CurrentLoad())
	})
}

func TestVehicleDeclaredEmptySetRejectsAll(t *testing.T) {
	v := NewVehicle(VehicleSpec{Make: "Fiat", Model: "Doblo", Capacity: 500, AllowedCargoTypes: AnyOf()}, nil)
	c := newReferenceCargo(t)
	assert.False(t, v.Accepts(Bulk(true)))
	assert.False(t, v.LoadCargo(c.cocoa))

	v.SetAllowedCargoTypes(nil)
	assert.True(t, v.LoadCargo(c.cocoa))
}

func TestVehicleUnloadCargo(t *testing.T) {
	sink := &recordingSink{}
	v := newReferenceVehicles(sink)
	c := newReferenceCargo(t)

	require.True(t, v.ford.LoadCargo(c.cocoa))
	v.ford.UnloadCargo()
	assert.Equal(t, 0, v.ford.CurrentLoad())

	v.ford.UnloadCargo()
	assert.Equal(t, 0, v.ford.CurrentLoad())
	assert.IsType(t, CargoUnloaded{}, sink.last())
}

func TestVehicleCanGo(t *testing.T) {
	v := NewVehicle(VehicleSpec{Make: "Ford", Model: "Transit", Capacity: 1000, FuelTankCapacity: 80}, nil)

	assert.Equal(t, 560, v.MaxDistance())
	assert.True(t, v.CanGo(0))
	assert.True(t, v.CanGo(560))
	assert.False(t, v.CanGo(561))

	odd := NewVehicle(VehicleSpec{Make: "Lada", Model: "Niva", FuelTankCapacity: 42.9}, nil)
	// 21.45 * 14 = 300.3
	assert.Equal(t, 300, odd.MaxDistance())

	dry := NewVehicle(VehicleSpec{Make: "Lada", Model: "Niva"}, nil)
	assert.True(t, dry.CanGo(0))
	assert.False(t, dry.CanGo(1))
}

func TestVehicleSpecValidate(t *testing.T) {
	assert.NoError(t, VehicleSpec{Make: "Ford", Model: "Transit", Capacity: 1, FuelTankCapacity: 1}.Validate())
	assert.ErrorIs(t, VehicleSpec{Model: "Transit"}.Validate(), ErrInvalidSpec)
	assert.ErrorIs(t, VehicleSpec{Make: "Ford", Model: "Transit", Capacity: -1}.Validate(), ErrInvalidSpec)
	assert.ErrorIs(t, VehicleSpec{Make: "Ford", Model: "Transit", FuelTankCapacity: -1}.Validate(), ErrInvalidSpec)
}

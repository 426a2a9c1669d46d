package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrInvalidSpec = errors.New("invalid vehicle spec")

// Fixed consumption rate, in distance units per liter.
const kmPerLiter = 14.0

// Immutable description of a single vehicle.
// A nil AllowedCargoTypes accepts every cargo type.
type VehicleSpec struct {
	Make              string
	Model             string
	Year              int
	Capacity          int
	FuelTankCapacity  float64
	AllowedCargoTypes CargoTypeSet
}

func (s VehicleSpec) Name() string {
	return strings.TrimSpace(s.Make + " " + s.Model)
}

func (s VehicleSpec) Validate() error {
	if strings.TrimSpace(s.Make) == "" || strings.TrimSpace(s.Model) == "" {
		return fmt.Errorf("validate vehicle: make and model are required: %w", ErrInvalidSpec)
	}
	if s.Capacity < 0 {
		return fmt.Errorf("validate vehicle %q: capacity=%d: %w", s.Name(), s.Capacity, ErrInvalidSpec)
	}
	if s.FuelTankCapacity < 0 {
		return fmt.Errorf("validate vehicle %q: fuel_tank_capacity=%g: %w", s.Name(), s.FuelTankCapacity, ErrInvalidSpec)
	}
	return nil
}

// Carrier is the capability set the fleet works against.
type Carrier interface {
	Name() string
	Capacity() int
	CurrentLoad() int
	// Accepts reports whether any compartment declares the cargo type.
	Accepts(t CargoType) bool
	LoadCargo(cargo *Cargo) bool
	UnloadCargo()
	MaxDistance() int
	CanGo(path int) bool
	TotalCapacity() int
	TotalCurrentLoad() int
	Describe() VehicleAdded
}

var (
	_ Carrier = (*Vehicle)(nil)
	_ Carrier = (*Truck)(nil)
)

// Single-compartment transport unit. Only the load counter and the
// allowed type set change after construction.
type Vehicle struct {
	spec        VehicleSpec
	currentLoad int
	events      EventSink
}

func NewVehicle(spec VehicleSpec, sink EventSink) *Vehicle {
	return &Vehicle{spec: spec, events: sinkOrDiscard(sink)}
}

func (v *Vehicle) Spec() VehicleSpec               { return v.spec }
func (v *Vehicle) Name() string                    { return v.spec.Name() }
func (v *Vehicle) Year() int                       { return v.spec.Year }
func (v *Vehicle) Capacity() int                   { return v.spec.Capacity }
func (v *Vehicle) FuelTankCapacity() float64       { return v.spec.FuelTankCapacity }
func (v *Vehicle) CurrentLoad() int                { return v.currentLoad }
func (v *Vehicle) AllowedCargoTypes() CargoTypeSet { return v.spec.AllowedCargoTypes }

// SetAllowedCargoTypes replaces the main compartment's type set; nil accepts all.
func (v *Vehicle) SetAllowedCargoTypes(types CargoTypeSet) {
	v.spec.AllowedCargoTypes = types
}

func (v *Vehicle) Accepts(t CargoType) bool {
	return v.supports(t)
}

func (v *Vehicle) supports(t CargoType) bool {
	return !v.spec.AllowedCargoTypes.Declared() || v.spec.AllowedCargoTypes.Contains(t)
}

func (v *Vehicle) hasRoom(weight int) bool {
	return v.currentLoad+weight <= v.spec.Capacity
}

// Load cargo into the vehicle. A failed load leaves the vehicle untouched.
func (v *Vehicle) LoadCargo(cargo *Cargo) bool {
	if cargo == nil {
		v.events.Emit(CargoRejected{Vehicle: v.Name(), Reason: ReasonNoCargo})
		return false
	}

	if !v.supports(cargo.Type()) {
		v.reject(cargo, ReasonUnsupportedType)
		return false
	}

	if !v.hasRoom(cargo.Weight()) {
		v.reject(cargo, ReasonOverweight)
		return false
	}

	v.currentLoad += cargo.Weight()
	v.loaded(cargo, CompartmentMain)
	return true
}

func (v *Vehicle) UnloadCargo() {
	v.currentLoad = 0
	v.events.Emit(CargoUnloaded{Vehicle: v.Name()})
}

// Maximum route distance on half a tank.
func (v *Vehicle) MaxDistance() int {
	return int(math.Floor((v.spec.FuelTankCapacity / 2) * kmPerLiter))
}

func (v *Vehicle) CanGo(path int) bool {
	return path <= v.MaxDistance()
}

func (v *Vehicle) TotalCapacity() int    { return v.spec.Capacity }
func (v *Vehicle) TotalCurrentLoad() int { return v.currentLoad }

func (v *Vehicle) Describe() VehicleAdded {
	return VehicleAdded{
		Vehicle:      v.Name(),
		AllowedTypes: v.spec.AllowedCargoTypes,
		Capacity:     v.spec.Capacity,
	}
}

func (v *Vehicle) loaded(cargo *Cargo, compartment Compartment) {
	v.events.Emit(CargoLoaded{
		Vehicle:     v.Name(),
		Compartment: compartment,
		Description: cargo.Description(),
		Weight:      cargo.Weight(),
		CargoType:   cargo.Type(),
	})
}

func (v *Vehicle) reject(cargo *Cargo, reason RejectReason) {
	v.events.Emit(CargoRejected{
		Vehicle:     v.Name(),
		Reason:      reason,
		Description: cargo.Description(),
		Weight:      cargo.Weight(),
		CargoType:   cargo.Type(),
	})
}

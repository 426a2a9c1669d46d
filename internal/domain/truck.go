package domain

import "fmt"

// TruckSpec adds an optional trailer to a vehicle spec.
// Unlike the main compartment, a nil TrailerAllowedCargoTypes accepts no cargo at all.
type TruckSpec struct {
	VehicleSpec
	TrailerAttached          bool
	TrailerCapacity          *int
	TrailerAllowedCargoTypes CargoTypeSet
}

func (s TruckSpec) Validate() error {
	if err := s.VehicleSpec.Validate(); err != nil {
		return err
	}
	if s.TrailerAttached && s.TrailerCapacity != nil && *s.TrailerCapacity < 0 {
		return fmt.Errorf("validate truck %q: trailer_capacity=%d: %w", s.Name(), *s.TrailerCapacity, ErrInvalidSpec)
	}
	return nil
}

// Truck is a vehicle with a second, independently constrained trailer compartment.
type Truck struct {
	Vehicle
	trailerAttached    bool
	trailerCapacity    *int
	trailerCurrentLoad int
	trailerTypes       CargoTypeSet
}

func NewTruck(spec TruckSpec, sink EventSink) *Truck {
	return &Truck{
		Vehicle:         Vehicle{spec: spec.VehicleSpec, events: sinkOrDiscard(sink)},
		trailerAttached: spec.TrailerAttached,
		trailerCapacity: spec.TrailerCapacity,
		trailerTypes:    spec.TrailerAllowedCargoTypes,
	}
}

func (t *Truck) TruckSpec() TruckSpec {
	return TruckSpec{
		VehicleSpec:              t.spec,
		TrailerAttached:          t.trailerAttached,
		TrailerCapacity:          t.trailerCapacity,
		TrailerAllowedCargoTypes: t.trailerTypes,
	}
}

func (t *Truck) TrailerAttached() bool                  { return t.trailerAttached }
func (t *Truck) TrailerCurrentLoad() int                { return t.trailerCurrentLoad }
func (t *Truck) TrailerAllowedCargoTypes() CargoTypeSet { return t.trailerTypes }

// TrailerCapacity is 0 when no trailer is attached or its capacity is unknown.
func (t *Truck) TrailerCapacity() int {
	if !t.trailerAttached || t.trailerCapacity == nil {
		return 0
	}
	return *t.trailerCapacity
}

func (t *Truck) trailerSupports(ct CargoType) bool {
	return t.trailerTypes.Declared() && t.trailerTypes.Contains(ct)
}

func (t *Truck) Accepts(ct CargoType) bool {
	return t.supports(ct) || (t.trailerAttached && t.trailerSupports(ct))
}

// Load cargo, preferring the main compartment. The trailer is used only
// when the main compartment rejects the type or is full, and a full trailer
// is a final failure.
func (t *Truck) LoadCargo(cargo *Cargo) bool {
	if cargo == nil {
		t.events.Emit(CargoRejected{Vehicle: t.Name(), Reason: ReasonNoCargo})
		return false
	}

	supportedByTruck := t.supports(cargo.Type())
	supportedByTrailer := t.trailerSupports(cargo.Type())

	if supportedByTruck && t.hasRoom(cargo.Weight()) {
		t.currentLoad += cargo.Weight()
		t.loaded(cargo, CompartmentMain)
		return true
	}

	if t.trailerAttached && supportedByTrailer {
		if t.trailerCurrentLoad+cargo.Weight() > t.TrailerCapacity() {
			t.reject(cargo, ReasonTrailerOverweight)
			return false
		}
		t.trailerCurrentLoad += cargo.Weight()
		t.loaded(cargo, CompartmentTrailer)
		return true
	}

	if supportedByTruck {
		t.reject(cargo, ReasonOverweight)
		return false
	}
	t.reject(cargo, ReasonUnsupportedType)
	return false
}

// Unload both compartments.
func (t *Truck) UnloadCargo() {
	t.trailerCurrentLoad = 0
	t.Vehicle.UnloadCargo()
}

func (t *Truck) TotalCapacity() int {
	return t.Capacity() + t.TrailerCapacity()
}

func (t *Truck) TotalCurrentLoad() int {
	return t.CurrentLoad() + t.trailerCurrentLoad
}

func (t *Truck) Describe() VehicleAdded {
	e := t.Vehicle.Describe()
	if t.trailerAttached {
		e.Trailer = &TrailerInfo{Capacity: t.TrailerCapacity(), AllowedTypes: t.trailerTypes}
	}
	return e
}

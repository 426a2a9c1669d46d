package domain

import "fmt"

// Event is a status notification emitted by vehicles and fleets.
// Every event also renders as a human-readable line via String.
type Event interface {
	Type() string
	String() string
}

// EventSink receives events synchronously, in emission order.
type EventSink interface {
	Emit(event Event)
}

type EventSinkFunc func(event Event)

func (f EventSinkFunc) Emit(event Event) { f(event) }

// Discard drops every event.
var Discard EventSink = EventSinkFunc(func(Event) {})

func sinkOrDiscard(sink EventSink) EventSink {
	if sink == nil {
		return Discard
	}
	return sink
}

type Compartment string

const (
	CompartmentMain    Compartment = "main"
	CompartmentTrailer Compartment = "trailer"
)

type RejectReason string

const (
	ReasonNoCargo           RejectReason = "no_cargo"
	ReasonUnsupportedType   RejectReason = "unsupported_type"
	ReasonOverweight        RejectReason = "overweight"
	ReasonTrailerOverweight RejectReason = "trailer_overweight"
)

type TrailerInfo struct {
	Capacity     int
	AllowedTypes CargoTypeSet
}

type VehicleAdded struct {
	Vehicle      string
	AllowedTypes CargoTypeSet
	Capacity     int
	Trailer      *TrailerInfo
}

func (e VehicleAdded) Type() string { return "VehicleAdded" }

func (e VehicleAdded) String() string {
	s := fmt.Sprintf("'%s' that can carry '%s' cargos with total weight of %d kg",
		e.Vehicle, e.AllowedTypes.describe("all"), e.Capacity)
	if e.Trailer != nil {
		s += fmt.Sprintf(" and has a trailer with additional capacity of %d kg for '%s' cargo types",
			e.Trailer.Capacity, e.Trailer.AllowedTypes.describe("none"))
	}
	return s + " added to fleet"
}

type CargoLoaded struct {
	Vehicle     string
	Compartment Compartment
	Description string
	Weight      int
	CargoType   CargoType
}

func (e CargoLoaded) Type() string { return "CargoLoaded" }

func (e CargoLoaded) String() string {
	if e.Compartment == CompartmentTrailer {
		return fmt.Sprintf("Cargo loaded to trailer of '%s': '%s'", e.Vehicle, e.Description)
	}
	return fmt.Sprintf("Cargo loaded to '%s': '%s'", e.Vehicle, e.Description)
}

// CargoRejected reports a failed load. Description and CargoType are empty for ReasonNoCargo.
type CargoRejected struct {
	Vehicle     string
	Reason      RejectReason
	Description string
	Weight      int
	CargoType   CargoType
}

func (e CargoRejected) Type() string { return "CargoRejected" }

func (e CargoRejected) String() string {
	switch e.Reason {
	case ReasonNoCargo:
		return fmt.Sprintf("Failed to load empty cargo on '%s'", e.Vehicle)
	case ReasonUnsupportedType:
		return fmt.Sprintf("'%s' can not handle '%s' cargo", e.Vehicle, e.CargoType)
	case ReasonOverweight:
		return fmt.Sprintf("'%s' can not handle weight of '%s'", e.Vehicle, e.Description)
	case ReasonTrailerOverweight:
		return fmt.Sprintf("Trailer of '%s' can't handle the weight of '%s'", e.Vehicle, e.Description)
	default:
		return fmt.Sprintf("'%s' rejected '%s'", e.Vehicle, e.Description)
	}
}

type CargoUnloaded struct {
	Vehicle string
}

func (e CargoUnloaded) Type() string   { return "CargoUnloaded" }
func (e CargoUnloaded) String() string { return fmt.Sprintf("'%s' unloaded", e.Vehicle) }

type RouteCheckStarted struct {
	Path       int
	CargoCount int
}

func (e RouteCheckStarted) Type() string { return "RouteCheckStarted" }

func (e RouteCheckStarted) String() string {
	return fmt.Sprintf("Can the fleet carry cargos on %d km route?", e.Path)
}

type CargoUnplaced struct {
	Description string
	CargoType   CargoType
}

func (e CargoUnplaced) Type() string { return "CargoUnplaced" }

func (e CargoUnplaced) String() string {
	return fmt.Sprintf("Could not find vehicle to carry '%s', '%s' cargo", e.Description, e.CargoType)
}

type RangeExceeded struct {
	Vehicle     string
	Path        int
	MaxDistance int
}

func (e RangeExceeded) Type() string { return "RangeExceeded" }

func (e RangeExceeded) String() string {
	return fmt.Sprintf("'%s' can not ride %d km route due to fuel amounts", e.Vehicle, e.Path)
}

type RouteChecked struct {
	Path     int
	Feasible bool
}

func (e RouteChecked) Type() string { return "RouteChecked" }

func (e RouteChecked) String() string {
	if e.Feasible {
		return fmt.Sprintf("Cargo can be carried on %d km route", e.Path)
	}
	return fmt.Sprintf("Cargo can not be carried on %d km route", e.Path)
}

package domain

import "testing"

type recordingSink struct {
	events []Event
}

func (r *recordingSink) Emit(e Event) { r.events = append(r.events, e) }

func (r *recordingSink) Reset() { r.events = nil }

func (r *recordingSink) types() []string {
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type())
	}
	return out
}

func (r *recordingSink) last() Event {
	if len(r.events) == 0 {
		return nil
	}
	return r.events[len(r.events)-1]
}

func intPtr(n int) *int { return &n }

type referenceVehicles struct {
	ford   *Vehicle
	skoda  *Vehicle
	volvo  *Truck
	tacoma *Truck
}

func newReferenceVehicles(sink EventSink) referenceVehicles {
	return referenceVehicles{
		ford: NewVehicle(VehicleSpec{
			Make: "Ford", Model: "Transit", Year: 2019,
			Capacity: 1000, FuelTankCapacity: 80,
			AllowedCargoTypes: AnyOf(Fragile(false), Bulk(true)),
		}, sink),
		skoda: NewVehicle(VehicleSpec{
			Make: "Skoda", Model: "Octavia", Year: 2019,
			Capacity: 300, FuelTankCapacity: 60,
		}, sink),
		volvo: NewTruck(TruckSpec{
			VehicleSpec: VehicleSpec{
				Make: "Volvo", Model: "FH", Year: 2020,
				Capacity: 5000, FuelTankCapacity: 200,
				AllowedCargoTypes: AnyOf(Fragile(true), Perishable(-10)),
			},
			TrailerAttached:          true,
			TrailerCapacity:          intPtr(2000),
			TrailerAllowedCargoTypes: AnyOf(Bulk(false)),
		}, sink),
		tacoma: NewTruck(TruckSpec{
			VehicleSpec: VehicleSpec{
				Make: "Toyota", Model: "Tacoma", Year: 2018,
				Capacity: 1500, FuelTankCapacity: 100,
				AllowedCargoTypes: AnyOf(Bulk(false)),
			},
		}, sink),
	}
}

type referenceCargo struct {
	instruments *Cargo
	medicines   *Cargo
	sand        *Cargo
	cocoa       *Cargo
}

func (c referenceCargo) all() []*Cargo {
	return []*Cargo{c.instruments, c.medicines, c.sand, c.cocoa}
}

func mustCargo(t *testing.T, description string, weight int, ct CargoType) *Cargo {
	t.Helper()
	c, err := NewCargo(description, weight, ct)
	if err != nil {
		t.Fatalf("new cargo %q: %v", description, err)
	}
	return c
}

func newReferenceCargo(t *testing.T) referenceCargo {
	t.Helper()
	return referenceCargo{
		instruments: mustCargo(t, "Musical equipment", 300, Fragile(true)),
		medicines:   mustCargo(t, "Medicines", 200, Perishable(-10)),
		sand:        mustCargo(t, "Sand", 1000, Bulk(false)),
		cocoa:       mustCargo(t, "Cocoa powder", 50, Bulk(true)),
	}
}

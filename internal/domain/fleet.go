package domain

// Fleet owns an ordered set of carriers. Insertion order is the priority
// order for first-fit assignment; duplicates are allowed.
type Fleet struct {
	vehicles []Carrier
	events   EventSink
}

type FleetInfo struct {
	TotalCapacity    int
	TotalCurrentLoad int
	Vehicles         int
}

func NewFleet(sink EventSink) *Fleet {
	return &Fleet{events: sinkOrDiscard(sink)}
}

func (f *Fleet) AddVehicle(vehicle Carrier) {
	f.vehicles = append(f.vehicles, vehicle)
	f.events.Emit(vehicle.Describe())
}

// Vehicles returns a copy of the fleet in priority order.
func (f *Fleet) Vehicles() []Carrier {
	out := make([]Carrier, len(f.vehicles))
	copy(out, f.vehicles)
	return out
}

func (f *Fleet) Len() int { return len(f.vehicles) }

// RemoveAt removes the carrier at index i, keeping the order of the rest.
func (f *Fleet) RemoveAt(i int) (Carrier, bool) {
	if i < 0 || i >= len(f.vehicles) {
		return nil, false
	}
	removed := f.vehicles[i]
	f.vehicles = append(f.vehicles[:i], f.vehicles[i+1:]...)
	return removed, true
}

// Remove drops the first occurrence of vehicle.
func (f *Fleet) Remove(vehicle Carrier) bool {
	for i, v := range f.vehicles {
		if v == vehicle {
			f.RemoveAt(i)
			return true
		}
	}
	return false
}

// Sum of main-compartment capacities. Trailers are not counted.
func (f *Fleet) TotalCapacity() int {
	total := 0
	for _, v := range f.vehicles {
		total += v.Capacity()
	}
	return total
}

// Sum of main-compartment loads. Trailers are not counted.
func (f *Fleet) TotalCurrentLoad() int {
	total := 0
	for _, v := range f.vehicles {
		total += v.CurrentLoad()
	}
	return total
}

func (f *Fleet) Info() FleetInfo {
	return FleetInfo{
		TotalCapacity:    f.TotalCapacity(),
		TotalCurrentLoad: f.TotalCurrentLoad(),
		Vehicles:         len(f.vehicles),
	}
}

func (f *Fleet) UnloadAll() {
	for _, v := range f.vehicles {
		v.UnloadCargo()
	}
}

// CanGo places every cargo item first-fit, in input order, then checks that
// each vehicle that received cargo can cover path.
//
// Loads are committed as they happen. When an item finds no vehicle or a
// loaded vehicle lacks range, the method returns false and leaves every
// successful load in place; unloading is up to the caller.
func (f *Fleet) CanGo(cargo []*Cargo, path int) bool {
	f.events.Emit(RouteCheckStarted{Path: path, CargoCount: len(cargo)})

	loaded := make([]Carrier, 0, len(f.vehicles))
	seen := make(map[Carrier]struct{}, len(f.vehicles))

	for _, item := range cargo {
		if item == nil {
			f.events.Emit(CargoUnplaced{})
			f.events.Emit(RouteChecked{Path: path, Feasible: false})
			return false
		}

		placed := false
		for _, v := range f.vehicles {
			// Pre-filter on declared types; LoadCargo checks again.
			if !v.Accepts(item.Type()) {
				continue
			}
			if v.LoadCargo(item) {
				if _, ok := seen[v]; !ok {
					seen[v] = struct{}{}
					loaded = append(loaded, v)
				}
				placed = true
				break
			}
		}

		if !placed {
			f.events.Emit(CargoUnplaced{Description: item.Description(), CargoType: item.Type()})
			f.events.Emit(RouteChecked{Path: path, Feasible: false})
			return false
		}
	}

	for _, v := range loaded {
		if !v.CanGo(path) {
			f.events.Emit(RangeExceeded{Vehicle: v.Name(), Path: path, MaxDistance: v.MaxDistance()})
			f.events.Emit(RouteChecked{Path: path, Feasible: false})
			return false
		}
	}

	f.events.Emit(RouteChecked{Path: path, Feasible: true})
	return true
}

package manifest

import (
	"bytes"
	"context"
	"errors"
	"fleet-cargo-service/internal/domain"
	"fleet-cargo-service/internal/ports"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML document describing a fleet and, optionally, a cargo list.
//
//	vehicles:
//	  - kind: truck
//	    make: Volvo
//	    model: FH
//	    capacity: 5000
//	    fuel_tank_capacity: 200
//	    allowed_cargo_types: [fragile:hardcase, perishable:-10]
//	    trailer: {attached: true, capacity: 2000, allowed_cargo_types: [bulk]}
//	cargo:
//	  - {description: Sand, weight: 1000, type: bulk}
//
// Omitting allowed_cargo_types leaves the set undeclared; [] declares an empty set.
type File struct {
	Vehicles []VehicleEntry `yaml:"vehicles"`
	Cargo    []CargoEntry   `yaml:"cargo"`
}

type VehicleEntry struct {
	ID                int           `yaml:"id,omitempty"`
	Kind              string        `yaml:"kind"`
	Make              string        `yaml:"make"`
	Model             string        `yaml:"model"`
	Year              int           `yaml:"year"`
	Capacity          int           `yaml:"capacity"`
	FuelTankCapacity  float64       `yaml:"fuel_tank_capacity"`
	AllowedCargoTypes []string      `yaml:"allowed_cargo_types"`
	Trailer           *TrailerEntry `yaml:"trailer,omitempty"`
}

type TrailerEntry struct {
	Attached          bool     `yaml:"attached"`
	Capacity          *int     `yaml:"capacity,omitempty"`
	AllowedCargoTypes []string `yaml:"allowed_cargo_types"`
}

type CargoEntry struct {
	Description string `yaml:"description"`
	Weight      int    `yaml:"weight"`
	Type        string `yaml:"type"`
}

func Decode(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &f, nil
}

func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load manifest: read %q: %w", path, err)
	}
	f, err := Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("load manifest %q: %w", path, err)
	}
	return f, nil
}

// Records converts vehicle entries in document order. Entries without an id
// get their 1-based position.
func (f *File) Records() ([]ports.VehicleRecord, error) {
	records := make([]ports.VehicleRecord, 0, len(f.Vehicles))
	for i, v := range f.Vehicles {
		rec, err := v.record(i + 1)
		if err != nil {
			return nil, fmt.Errorf("manifest vehicle #%d: %w", i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (v VehicleEntry) record(position int) (ports.VehicleRecord, error) {
	allowed, err := domain.ParseCargoTypeSet(v.AllowedCargoTypes)
	if err != nil {
		return ports.VehicleRecord{}, err
	}

	id := v.ID
	if id == 0 {
		id = position
	}

	kind := ports.VehicleKind(v.Kind)
	if kind == "" {
		kind = ports.KindVehicle
	}

	rec := ports.VehicleRecord{
		ID:   id,
		Kind: kind,
		Spec: domain.TruckSpec{
			VehicleSpec: domain.VehicleSpec{
				Make:              v.Make,
				Model:             v.Model,
				Year:              v.Year,
				Capacity:          v.Capacity,
				FuelTankCapacity:  v.FuelTankCapacity,
				AllowedCargoTypes: allowed,
			},
		},
	}

	switch kind {
	case ports.KindVehicle:
		if v.Trailer != nil {
			return ports.VehicleRecord{}, fmt.Errorf("%q: only trucks can have a trailer", rec.Spec.Name())
		}
		if err := rec.Spec.VehicleSpec.Validate(); err != nil {
			return ports.VehicleRecord{}, err
		}
	case ports.KindTruck:
		if v.Trailer != nil {
			trailerTypes, err := domain.ParseCargoTypeSet(v.Trailer.AllowedCargoTypes)
			if err != nil {
				return ports.VehicleRecord{}, fmt.Errorf("trailer: %w", err)
			}
			rec.Spec.TrailerAttached = v.Trailer.Attached
			rec.Spec.TrailerCapacity = v.Trailer.Capacity
			rec.Spec.TrailerAllowedCargoTypes = trailerTypes
		}
		if err := rec.Spec.Validate(); err != nil {
			return ports.VehicleRecord{}, err
		}
	default:
		return ports.VehicleRecord{}, fmt.Errorf("unknown kind %q", v.Kind)
	}

	return rec, nil
}

// CargoList builds the cargo items in document order.
func (f *File) CargoList() ([]*domain.Cargo, error) {
	out := make([]*domain.Cargo, 0, len(f.Cargo))
	for i, c := range f.Cargo {
		ct, err := domain.ParseCargoType(c.Type)
		if err != nil {
			return nil, fmt.Errorf("manifest cargo #%d: %w", i+1, err)
		}
		cargo, err := domain.NewCargo(c.Description, c.Weight, ct)
		if err != nil {
			return nil, fmt.Errorf("manifest cargo #%d: %w", i+1, err)
		}
		out = append(out, cargo)
	}
	return out, nil
}

// Repository serves vehicles straight from a manifest file, re-read on every call.
type Repository struct {
	Path string
}

func NewRepository(path string) *Repository {
	return &Repository{Path: path}
}

func (r *Repository) ListVehicles(ctx context.Context) ([]ports.VehicleRecord, error) {
	f, err := Load(r.Path)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	records, err := f.Records()
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return records, nil
}

package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNonPositiveWeight = errors.New("cargo weight must be greater than 0")
	ErrUnknownCargoType  = errors.New("unknown cargo type")
)

type CargoKind int

const (
	KindFragile CargoKind = iota + 1
	KindPerishable
	KindBulk
)

// CargoType is a closed variant: fragile, perishable or bulk, each with its own payload.
// The struct is comparable, so two types are compatible only when kind and payload match.
type CargoType struct {
	kind         CargoKind
	inHardcase   bool
	temperatureC int
	inBricks     bool
}

func Fragile(inHardcase bool) CargoType {
	return CargoType{kind: KindFragile, inHardcase: inHardcase}
}

func Perishable(temperatureC int) CargoType {
	return CargoType{kind: KindPerishable, temperatureC: temperatureC}
}

func Bulk(inBricks bool) CargoType {
	return CargoType{kind: KindBulk, inBricks: inBricks}
}

func (t CargoType) Kind() CargoKind   { return t.kind }
func (t CargoType) InHardcase() bool  { return t.kind == KindFragile && t.inHardcase }
func (t CargoType) TemperatureC() int { return t.temperatureC }
func (t CargoType) InBricks() bool    { return t.kind == KindBulk && t.inBricks }

// Human-readable form used in status events.
func (t CargoType) String() string {
	switch t.kind {
	case KindFragile:
		if t.inHardcase {
			return "fragile in hardcase"
		}
		return "fragile"
	case KindPerishable:
		return fmt.Sprintf("perishable (%d degrees)", t.temperatureC)
	case KindBulk:
		if t.inBricks {
			return "bulk in bricks"
		}
		return "bulk"
	default:
		return "unknown"
	}
}

// Code returns the storage form understood by ParseCargoType.
func (t CargoType) Code() string {
	switch t.kind {
	case KindFragile:
		if t.inHardcase {
			return "fragile:hardcase"
		}
		return "fragile"
	case KindPerishable:
		return "perishable:" + strconv.Itoa(t.temperatureC)
	case KindBulk:
		if t.inBricks {
			return "bulk:bricks"
		}
		return "bulk"
	default:
		return ""
	}
}

// ParseCargoType decodes the storage form produced by Code.
func ParseCargoType(code string) (CargoType, error) {
	kind, payload, _ := strings.Cut(strings.TrimSpace(strings.ToLower(code)), ":")

	switch kind {
	case "fragile":
		switch payload {
		case "":
			return Fragile(false), nil
		case "hardcase":
			return Fragile(true), nil
		}
	case "perishable":
		temp, err := strconv.Atoi(payload)
		if err != nil {
			return CargoType{}, fmt.Errorf("parse cargo type %q: temperature: %w", code, ErrUnknownCargoType)
		}
		return Perishable(temp), nil
	case "bulk":
		switch payload {
		case "":
			return Bulk(false), nil
		case "bricks":
			return Bulk(true), nil
		}
	}

	return CargoType{}, fmt.Errorf("parse cargo type %q: %w", code, ErrUnknownCargoType)
}

func (t CargoType) MarshalText() ([]byte, error) {
	if t.kind == 0 {
		return nil, fmt.Errorf("marshal cargo type: %w", ErrUnknownCargoType)
	}
	return []byte(t.Code()), nil
}

func (t *CargoType) UnmarshalText(b []byte) error {
	parsed, err := ParseCargoType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// CargoTypeSet is an optional set of cargo types.
// A nil set means "not declared"; what that implies is decided by the compartment owning it.
type CargoTypeSet []CargoType

// AnyOf declares a set. AnyOf() with no arguments is a declared, empty set.
func AnyOf(types ...CargoType) CargoTypeSet {
	s := make(CargoTypeSet, 0, len(types))
	return append(s, types...)
}

func (s CargoTypeSet) Declared() bool { return s != nil }

func (s CargoTypeSet) Contains(t CargoType) bool {
	for _, c := range s {
		if c == t {
			return true
		}
	}
	return false
}

// Codes returns storage codes for the set; nil for an undeclared set.
func (s CargoTypeSet) Codes() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s))
	for _, t := range s {
		out = append(out, t.Code())
	}
	return out
}

// ParseCargoTypeSet is the inverse of Codes. A nil input stays undeclared.
func ParseCargoTypeSet(codes []string) (CargoTypeSet, error) {
	if codes == nil {
		return nil, nil
	}
	s := make(CargoTypeSet, 0, len(codes))
	for _, c := range codes {
		t, err := ParseCargoType(c)
		if err != nil {
			return nil, err
		}
		s = append(s, t)
	}
	return s, nil
}

// describe renders the set the way status lines do, using fallback when undeclared.
func (s CargoTypeSet) describe(fallback string) string {
	if s == nil {
		return fallback
	}
	names := make([]string, 0, len(s))
	for _, t := range s {
		names = append(names, t.String())
	}
	return strings.Join(names, ", ")
}

// Immutable shipment unit. Build with NewCargo.
type Cargo struct {
	description string
	weight      int
	cargoType   CargoType
}

// NewCargo returns nil and ErrNonPositiveWeight when weight <= 0.
func NewCargo(description string, weight int, cargoType CargoType) (*Cargo, error) {
	if weight <= 0 {
		return nil, fmt.Errorf("new cargo %q: weight=%d: %w", description, weight, ErrNonPositiveWeight)
	}
	return &Cargo{description: description, weight: weight, cargoType: cargoType}, nil
}

func (c *Cargo) Description() string { return c.description }
func (c *Cargo) Weight() int         { return c.weight }
func (c *Cargo) Type() CargoType     { return c.cargoType }

package dto

type TrailerResponse struct {
	Capacity          int      `json:"capacity"`
	AllowedCargoTypes []string `json:"allowed_cargo_types"`
}

type VehicleResponse struct {
	Name string `json:"name"`
	// Null when every cargo type is accepted.
	AllowedCargoTypes []string         `json:"allowed_cargo_types"`
	Capacity          int              `json:"capacity"`
	MaxDistance       int              `json:"max_distance"`
	Trailer           *TrailerResponse `json:"trailer,omitempty"`
	Summary           string           `json:"summary"`
}

type FleetResponse struct {
	TotalCapacity    int               `json:"total_capacity"`
	TotalCurrentLoad int               `json:"total_current_load"`
	Vehicles         []VehicleResponse `json:"vehicles"`
}

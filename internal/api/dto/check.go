package dto

type CargoRequest struct {
	Description string `json:"description"`
	Weight      int    `json:"weight"`
	Type        string `json:"type"`
}

type CheckRequest struct {
	Path  *int           `json:"path"`
	Cargo []CargoRequest `json:"cargo"`
}

type VehicleLoadResponse struct {
	Vehicle       string `json:"vehicle"`
	CurrentLoad   int    `json:"current_load"`
	TrailerLoad   int    `json:"trailer_load"`
	TotalCapacity int    `json:"total_capacity"`
	MaxDistance   int    `json:"max_distance"`
}

type EventResponse struct {
	Type    string         `json:"type"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

type CheckResponse struct {
	CheckID  string                `json:"check_id"`
	Path     int                   `json:"path"`
	Feasible bool                  `json:"feasible"`
	Loads    []VehicleLoadResponse `json:"loads"`
	Events   []EventResponse       `json:"events"`
}

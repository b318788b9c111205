package models

// PlanRequest represents the request body for running a planning cycle
type PlanRequest struct {
	Config  PlanConfig  `json:"config" binding:"required"`
	Options PlanOptions `json:"options,omitempty"`
}

// PlanConfig contains both fleets and the transfer buffer
type PlanConfig struct {
	Inflow  FleetConfig  `json:"inflow"`
	Outflow FleetConfig  `json:"outflow"`
	Buffer  BufferConfig `json:"buffer"`
}

// FleetConfig defines one fleet. File names a preset in the fleet directory
// (e.g. "river"); explicit non-zero fields override the preset.
type FleetConfig struct {
	File         string      `json:"file,omitempty"`
	Name         string      `json:"name,omitempty"`
	VesselPrefix string      `json:"vessel_prefix,omitempty"`
	StartDate    string      `json:"start_date,omitempty"` // YYYY-MM-DD
	Vessels      int         `json:"vessels"`
	IntervalDays float64     `json:"interval_days"`
	Capacity     float64     `json:"capacity"`
	Legs         []LegConfig `json:"legs,omitempty"`
}

// LegConfig defines one leg of a route
type LegConfig struct {
	Name          string  `json:"name"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	TransitDays   float64 `json:"transit_days"`
	OperationDays float64 `json:"operation_days"`
}

// BufferConfig defines the transfer tank
type BufferConfig struct {
	Capacity float64 `json:"capacity"`
}

// PlanOptions selects which tables are returned inline
type PlanOptions struct {
	IncludeItineraries bool `json:"include_itineraries,omitempty"`
	IncludeLog         bool `json:"include_log,omitempty"`
	IncludeVessels     bool `json:"include_vessels,omitempty"`
	IncludeChart       bool `json:"include_chart,omitempty"`
}

// AllTables returns options with every table included
func AllTables() PlanOptions {
	return PlanOptions{
		IncludeItineraries: true,
		IncludeLog:         true,
		IncludeVessels:     true,
		IncludeChart:       true,
	}
}

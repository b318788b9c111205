package models

import "time"

// PlanResponse represents a finished planning cycle
type PlanResponse struct {
	ID          string      `json:"id"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	Summary     PlanSummary `json:"summary"`
	Diagnostics Diagnostics `json:"diagnostics"`

	InflowItinerary  []ItineraryRow `json:"inflow_itinerary,omitempty"`
	OutflowItinerary []ItineraryRow `json:"outflow_itinerary,omitempty"`
	TankLog          []TankRow      `json:"tank_log,omitempty"`
	Vessels          []VesselTotal  `json:"vessels,omitempty"`
	Chart            []GanttBar     `json:"chart,omitempty"`
}

// PlanSummary contains the headline metrics of a plan
type PlanSummary struct {
	InflowVesselCount  int     `json:"inflow_vessel_count"`
	OutflowVesselCount int     `json:"outflow_vessel_count"`
	InflowCapacity     float64 `json:"inflow_capacity"`
	OutflowCapacity    float64 `json:"outflow_capacity"`
	MaxLevel           float64 `json:"max_level"`
	MinLevel           float64 `json:"min_level"`
	BufferCapacity     float64 `json:"buffer_capacity"`
	InflowStartDate    string  `json:"inflow_start_date"`
	OutflowStartDate   string  `json:"outflow_start_date"`
	CycleLengthDays    int     `json:"cycle_length_days"`
}

// Diagnostics reports what the tank clamped and how much moved
type Diagnostics struct {
	InflowOffered   float64 `json:"inflow_offered"`
	OutflowDemanded float64 `json:"outflow_demanded"`
	Unloaded        float64 `json:"unloaded"`
	Loaded          float64 `json:"loaded"`
	FinalLevel      float64 `json:"final_level"`
	OverflowEvents  int     `json:"overflow_events"`
	DiscardedVolume float64 `json:"discarded_volume"`
	ShortageEvents  int     `json:"shortage_events"`
	UnmetVolume     float64 `json:"unmet_volume"`
}

// ItineraryRow represents one leg of one voyage
type ItineraryRow struct {
	Vessel        string  `json:"vessel"`
	Leg           string  `json:"leg"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	Departure     string  `json:"departure"`
	Arrival       string  `json:"arrival"`
	OperationEnd  string  `json:"operation_end"`
	TransitDays   float64 `json:"transit_days"`
	OperationDays float64 `json:"operation_days"`
}

// TankRow represents one applied buffer event
type TankRow struct {
	Time   time.Time `json:"time"`
	Vessel string    `json:"vessel"`
	Action string    `json:"action"`
	Level  float64   `json:"level"`
	Port   string    `json:"port"`
}

// VesselTotal aggregates one vessel's voyage
type VesselTotal struct {
	Fleet         string    `json:"fleet"`
	Vessel        string    `json:"vessel"`
	Legs          int       `json:"legs"`
	TransitDays   float64   `json:"transit_days"`
	OperationDays float64   `json:"operation_days"`
	VoyageDays    int       `json:"voyage_days"`
	Volume        float64   `json:"volume"`
	Departure     time.Time `json:"departure"`
	FinalArrival  time.Time `json:"final_arrival"`
}

// GanttBar is one bar of the fleet Gantt chart
type GanttBar struct {
	Fleet  string    `json:"fleet"`
	Vessel string    `json:"vessel"`
	Leg    string    `json:"leg"`
	Label  string    `json:"label"`
	Start  time.Time `json:"start"`
	Finish time.Time `json:"finish"`
}

// FleetInfo represents information about a fleet preset
type FleetInfo struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	File  string     `json:"file"`
	Specs FleetSpecs `json:"specs"`
}

// FleetSpecs contains fleet specifications
type FleetSpecs struct {
	Vessels      int      `json:"vessels"`
	IntervalDays float64  `json:"interval_days"`
	Capacity     float64  `json:"capacity"`
	Ports        []string `json:"ports"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

package model

import "time"

// Stop is one leg's realized timing within a voyage.
// Departure of stop i+1 equals OperationEnd of stop i.
type Stop struct {
	LegIndex      int // 1-based
	LegName       string
	PortFrom      string
	PortTo        string
	Departure     time.Time
	Arrival       time.Time
	OperationEnd  time.Time
	TransitDays   float64
	OperationDays float64
}

// Voyage is one vessel's realized schedule over a route.
type Voyage struct {
	VesselID     int
	RouteName    string
	VesselName   string
	Capacity     float64
	Itinerary    []Stop
	TotalDays    int // floored
	FinalArrival time.Time
}

// Departure is the first stop's departure, or the zero time for an empty itinerary.
func (v Voyage) Departure() time.Time {
	if len(v.Itinerary) == 0 {
		return time.Time{}
	}
	return v.Itinerary[0].Departure
}

// LastArrival is the last stop's arrival (before its operation), or the zero time.
func (v Voyage) LastArrival() time.Time {
	if len(v.Itinerary) == 0 {
		return time.Time{}
	}
	return v.Itinerary[len(v.Itinerary)-1].Arrival
}

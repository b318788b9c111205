package model

import (
	"fmt"
	"math"
	"time"
)

// Day is the unit all leg durations and intervals are expressed in.
const Day = 24 * time.Hour

// Leg is one directed port-to-port segment of a route.
// Units:
// - TransitDays: days under way from PortFrom to PortTo
// - OperationDays: days spent unloading/loading at PortTo
type Leg struct {
	Name          string
	PortFrom      string
	PortTo        string
	TransitDays   float64
	OperationDays float64
}

func NewLeg(name, from, to string, transitDays, operationDays float64) (Leg, error) {
	l := Leg{
		Name:          name,
		PortFrom:      from,
		PortTo:        to,
		TransitDays:   transitDays,
		OperationDays: operationDays,
	}
	if err := l.Validate(); err != nil {
		return Leg{}, err
	}
	return l, nil
}

func (l Leg) Validate() error {
	if err := nonNegativeDays("transit_days", l.TransitDays); err != nil {
		return err
	}
	return nonNegativeDays("operation_days", l.OperationDays)
}

// TotalDays is transit plus operation time.
func (l Leg) TotalDays() float64 {
	return l.TransitDays + l.OperationDays
}

func (l Leg) Transit() time.Duration   { return Days(l.TransitDays) }
func (l Leg) Operation() time.Duration { return Days(l.OperationDays) }

// String renders the leg as "PortFrom→PortTo".
func (l Leg) String() string {
	return l.PortFrom + "→" + l.PortTo
}

// Route is an ordered sequence of legs sailed by vessels of one capacity.
// Consecutive legs are not required to chain ports.
type Route struct {
	Name           string
	Legs           []Leg
	VesselCapacity float64
}

func NewRoute(name string, capacity float64, legs ...Leg) (*Route, error) {
	r := &Route{
		Name:           name,
		Legs:           append([]Leg(nil), legs...),
		VesselCapacity: capacity,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Route) Validate() error {
	if len(r.Legs) == 0 {
		return invalid("legs", "must not be empty")
	}
	if math.IsNaN(r.VesselCapacity) || math.IsInf(r.VesselCapacity, 0) || r.VesselCapacity <= 0 {
		return invalid("capacity", "must be > 0, got %v", r.VesselCapacity)
	}
	for i, l := range r.Legs {
		if err := l.Validate(); err != nil {
			return Prefixed(legField(i), err)
		}
	}
	if total := r.TotalDays(); total >= MaxDays {
		return invalid("legs", "total duration must be < %.0f days, got %v", MaxDays, total)
	}
	return nil
}

// TotalDays is the sum of every leg's total time.
func (r *Route) TotalDays() float64 {
	total := 0.0
	for _, l := range r.Legs {
		total += l.TotalDays()
	}
	return total
}

// Ports lists the first leg's origin followed by every leg's destination. A nil
// route has no ports.
func (r *Route) Ports() []string {
	if r == nil || len(r.Legs) == 0 {
		return nil
	}
	ports := make([]string, 0, len(r.Legs)+1)
	ports = append(ports, r.Legs[0].PortFrom)
	for _, l := range r.Legs {
		ports = append(ports, l.PortTo)
	}
	return ports
}

// TerminalPort is the last port of the route.
func (r *Route) TerminalPort() string {
	ports := r.Ports()
	if len(ports) == 0 {
		return ""
	}
	return ports[len(ports)-1]
}

// MaxDays bounds every span passed to Days. Whole days only, so the product
// with Day stays below math.MaxInt64 after rounding.
var MaxDays = math.Floor(float64(math.MaxInt64) / float64(Day))

// Days converts a fractional day count to a duration, rounded to the nanosecond.
// Callers keep d within [0, MaxDays].
func Days(d float64) time.Duration {
	return time.Duration(math.Round(d * float64(Day)))
}

// WholeDays floors a duration to an integer day count.
func WholeDays(d time.Duration) int {
	return int(math.Floor(float64(d) / float64(Day)))
}

func nonNegativeDays(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(field, "must be finite, got %v", v)
	}
	if v < 0 {
		return invalid(field, "must be >= 0, got %v", v)
	}
	if v >= MaxDays {
		return invalid(field, "must be < %.0f days, got %v", MaxDays, v)
	}
	return nil
}

func legField(i int) string {
	return fmt.Sprintf("legs[%d].", i)
}

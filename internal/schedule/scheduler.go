package schedule

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ZHABODAV/fleet-list/internal/model"
)

// DefaultVesselPrefix names vessels Ship_1, Ship_2, ...
const DefaultVesselPrefix = "Ship"

// Params are the scalar inputs of one fleet's schedule.
//
// Vessel k (1-based) departs at StartDate + (k-1)*IntervalDays. An interval of 0
// sends every vessel at once.
type Params struct {
	StartDate    time.Time
	VesselCount  int
	IntervalDays float64
	VesselPrefix string // optional; default DefaultVesselPrefix
}

func (p Params) Validate() error {
	if p.VesselCount < 1 {
		return &model.ValidationError{Field: "vessels", Reason: fmt.Sprintf("must be >= 1, got %d", p.VesselCount)}
	}
	if math.IsNaN(p.IntervalDays) || math.IsInf(p.IntervalDays, 0) {
		return &model.ValidationError{Field: "interval_days", Reason: fmt.Sprintf("must be finite, got %v", p.IntervalDays)}
	}
	if p.IntervalDays < 0 {
		return &model.ValidationError{Field: "interval_days", Reason: fmt.Sprintf("must be >= 0, got %v", p.IntervalDays)}
	}
	if spread := p.IntervalDays * float64(p.VesselCount-1); spread >= model.MaxDays {
		return &model.ValidationError{Field: "interval_days", Reason: fmt.Sprintf("departure spread %v days across %d vessels must be < %.0f days", spread, p.VesselCount, model.MaxDays)}
	}
	return nil
}

// Scheduler owns the voyages generated for one route. It is fully computed by New
// and read-only afterwards.
type Scheduler struct {
	Route        *model.Route
	StartDate    time.Time
	VesselCount  int
	IntervalDays float64
	VesselPrefix string

	voyages []model.Voyage
}

// New validates the inputs and generates one voyage per vessel.
func New(route *model.Route, p Params) (*Scheduler, error) {
	if route == nil {
		return nil, &model.ValidationError{Field: "route", Reason: "is required"}
	}
	if err := route.Validate(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	prefix := strings.TrimSpace(p.VesselPrefix)
	if prefix == "" {
		prefix = DefaultVesselPrefix
	}

	s := &Scheduler{
		Route:        route,
		StartDate:    p.StartDate,
		VesselCount:  p.VesselCount,
		IntervalDays: p.IntervalDays,
		VesselPrefix: prefix,
		voyages:      make([]model.Voyage, 0, p.VesselCount),
	}
	for id := 1; id <= p.VesselCount; id++ {
		departure := s.StartDate.Add(model.Days(float64(id-1) * s.IntervalDays))
		s.voyages = append(s.voyages, s.voyage(id, departure))
	}
	return s, nil
}

// voyage walks the route's legs back to back from departure, with no idle time
// between one leg's operation end and the next leg's departure.
func (s *Scheduler) voyage(id int, departure time.Time) model.Voyage {
	v := model.Voyage{
		VesselID:   id,
		RouteName:  s.Route.Name,
		VesselName: fmt.Sprintf("%s_%d", s.VesselPrefix, id),
		Capacity:   s.Route.VesselCapacity,
		Itinerary:  make([]model.Stop, 0, len(s.Route.Legs)),
	}

	current := departure
	for i, leg := range s.Route.Legs {
		arrival := current.Add(leg.Transit())
		end := arrival.Add(leg.Operation())
		v.Itinerary = append(v.Itinerary, model.Stop{
			LegIndex:      i + 1,
			LegName:       leg.Name,
			PortFrom:      leg.PortFrom,
			PortTo:        leg.PortTo,
			Departure:     current,
			Arrival:       arrival,
			OperationEnd:  end,
			TransitDays:   leg.TransitDays,
			OperationDays: leg.OperationDays,
		})
		current = end
	}

	v.TotalDays = model.WholeDays(current.Sub(departure))
	v.FinalArrival = current
	return v
}

// Voyages returns the generated voyages in vessel order. The caller gets a copy.
func (s *Scheduler) Voyages() []model.Voyage {
	out := make([]model.Voyage, len(s.voyages))
	for i, v := range s.voyages {
		v.Itinerary = append([]model.Stop(nil), v.Itinerary...)
		out[i] = v
	}
	return out
}

// Len is the number of generated voyages.
func (s *Scheduler) Len() int { return len(s.voyages) }

func (s *Scheduler) legCount() int {
	if s.Route == nil {
		return 0
	}
	return len(s.Route.Legs)
}

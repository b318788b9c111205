package analysis

import (
	"fmt"
	"math"
	"time"

	"github.com/ZHABODAV/fleet-list/internal/model"
	"github.com/ZHABODAV/fleet-list/internal/schedule"
	"github.com/ZHABODAV/fleet-list/internal/simulation"
)

// Summary is the headline view of one planning cycle.
type Summary struct {
	InflowVessels   int       `json:"inflow_vessel_count"`
	OutflowVessels  int       `json:"outflow_vessel_count"`
	InflowCapacity  float64   `json:"inflow_capacity"`
	OutflowCapacity float64   `json:"outflow_capacity"`
	MaxLevel        float64   `json:"max_level"`
	MinLevel        float64   `json:"min_level"`
	BufferCapacity  float64   `json:"buffer_capacity"`
	InflowStart     time.Time `json:"inflow_start_date"`
	OutflowStart    time.Time `json:"outflow_start_date"`
	CycleDays       int       `json:"cycle_length_days"`
}

// Summarize computes the summary metrics. It returns model.ErrEmptyResult when
// either fleet has no voyages or the run logged nothing.
func Summarize(inflow, outflow *schedule.Scheduler, res *simulation.Result) (Summary, error) {
	if inflow == nil || outflow == nil || res == nil {
		return Summary{}, fmt.Errorf("summarize: %w: missing schedule or result", model.ErrEmptyResult)
	}
	if inflow.Route == nil || outflow.Route == nil {
		return Summary{}, fmt.Errorf("summarize: %w: schedule has no route", model.ErrEmptyResult)
	}
	cycle, err := CycleDays(inflow, outflow)
	if err != nil {
		return Summary{}, err
	}
	minLevel, maxLevel, err := LevelRange(res.Log)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		InflowVessels:   inflow.VesselCount,
		OutflowVessels:  outflow.VesselCount,
		InflowCapacity:  inflow.Route.VesselCapacity,
		OutflowCapacity: outflow.Route.VesselCapacity,
		MaxLevel:        maxLevel,
		MinLevel:        minLevel,
		BufferCapacity:  res.Capacity,
		InflowStart:     inflow.StartDate,
		OutflowStart:    outflow.StartDate,
		CycleDays:       cycle,
	}, nil
}

// LevelRange returns the lowest and highest level reached after any event.
func LevelRange(log []simulation.LogEntry) (minLevel, maxLevel float64, err error) {
	if len(log) == 0 {
		return 0, 0, fmt.Errorf("level range: %w: tank log is empty", model.ErrEmptyResult)
	}
	lo, hi := log[0].LevelAfter, log[0].LevelAfter
	for _, e := range log[1:] {
		if e.LevelAfter.LessThan(lo) {
			lo = e.LevelAfter
		}
		if e.LevelAfter.GreaterThan(hi) {
			hi = e.LevelAfter
		}
	}
	return lo.InexactFloat64(), hi.InexactFloat64(), nil
}

// CycleDays is the longest span, in whole days, from the first inflow voyage's
// departure to any voyage's final arrival across both fleets.
//
// The base is the first generated inflow voyage, not the earliest departure of
// either fleet, so an outflow fleet that starts earlier does not stretch the cycle.
func CycleDays(inflow, outflow *schedule.Scheduler) (int, error) {
	in, out := inflow.Voyages(), outflow.Voyages()
	if len(in) == 0 || len(out) == 0 {
		return 0, fmt.Errorf("cycle length: %w: inflow has %d voyages, outflow has %d", model.ErrEmptyResult, len(in), len(out))
	}
	base := in[0].Departure()

	cycle := math.MinInt
	for _, v := range append(in, out...) {
		if d := model.WholeDays(v.FinalArrival.Sub(base)); d > cycle {
			cycle = d
		}
	}
	return cycle, nil
}

package analysis

import (
	"time"

	"github.com/ZHABODAV/fleet-list/internal/model"
	"github.com/ZHABODAV/fleet-list/internal/schedule"
	"github.com/ZHABODAV/fleet-list/internal/simulation"
)

// Fleet labels used in per-vessel output and chart series.
const (
	FleetInflow  = "inflow"
	FleetOutflow = "outflow"
)

// VesselTotal aggregates one vessel's voyage.
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

func VesselTotals(fleet string, s *schedule.Scheduler) []VesselTotal {
	voyages := s.Voyages()
	out := make([]VesselTotal, 0, len(voyages))
	for _, v := range voyages {
		t := VesselTotal{
			Fleet:        fleet,
			Vessel:       v.VesselName,
			Legs:         len(v.Itinerary),
			VoyageDays:   v.TotalDays,
			Volume:       v.Capacity,
			Departure:    v.Departure(),
			FinalArrival: v.FinalArrival,
		}
		for _, st := range v.Itinerary {
			t.TransitDays += st.TransitDays
			t.OperationDays += st.OperationDays
		}
		out = append(out, t)
	}
	return out
}

// FleetTotals summarizes volume offered by each fleet against what the tank moved.
type FleetTotals struct {
	InflowVessels   int     `json:"inflow_vessels"`
	OutflowVessels  int     `json:"outflow_vessels"`
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

func Totals(inflow, outflow *schedule.Scheduler, res *simulation.Result) FleetTotals {
	d := res.Diagnostics
	return FleetTotals{
		InflowVessels:   inflow.Len(),
		OutflowVessels:  outflow.Len(),
		InflowOffered:   offered(inflow.Voyages()),
		OutflowDemanded: offered(outflow.Voyages()),
		Unloaded:        d.TotalUnloaded.InexactFloat64(),
		Loaded:          d.TotalLoaded.InexactFloat64(),
		FinalLevel:      res.FinalLevel.InexactFloat64(),
		OverflowEvents:  d.OverflowEvents,
		DiscardedVolume: d.DiscardedVolume.InexactFloat64(),
		ShortageEvents:  d.ShortageEvents,
		UnmetVolume:     d.UnmetVolume.InexactFloat64(),
	}
}

func offered(voyages []model.Voyage) float64 {
	total := 0.0
	for _, v := range voyages {
		total += v.Capacity
	}
	return total
}

// Bars returns chart bars for both fleets, inflow first.
func Bars(inflow, outflow *schedule.Scheduler) []schedule.Bar {
	return append(inflow.Bars(FleetInflow), outflow.Bars(FleetOutflow)...)
}

package schedule

import (
	"time"
)

// Bar is one leg of one voyage drawn on a Gantt chart, spanning departure to
// operation end.
type Bar struct {
	Fleet  string    `json:"fleet"`
	Vessel string    `json:"vessel"`
	Leg    string    `json:"leg"`
	Label  string    `json:"label"`
	Start  time.Time `json:"start"`
	Finish time.Time `json:"finish"`
}

// Bars returns the chart bars for this fleet in generation order.
func (s *Scheduler) Bars(fleet string) []Bar {
	bars := make([]Bar, 0, len(s.voyages)*s.legCount())
	for _, v := range s.voyages {
		for _, st := range v.Itinerary {
			bars = append(bars, Bar{
				Fleet:  fleet,
				Vessel: v.VesselName,
				Leg:    st.LegName,
				Label:  lastRune(st.PortFrom) + "→" + lastRune(st.PortTo),
				Start:  st.Departure,
				Finish: st.OperationEnd,
			})
		}
	}
	return bars
}

// lastRune shortens "PortA" to "A" for bar labels.
func lastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return ""
	}
	return string(r[len(r)-1])
}

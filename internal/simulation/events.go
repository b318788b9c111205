package simulation

import (
	"sort"
	"time"

	"github.com/ZHABODAV/fleet-list/internal/model"
	"github.com/ZHABODAV/fleet-list/internal/schedule"
)

// Event is a single tank transfer at the transfer port. Events live only for
// the duration of one run.
type Event struct {
	Time   time.Time
	Action model.Action
	Vessel string
	Port   string
	Volume float64
}

// Events builds the merged event sequence for one run: one inflow event per
// inflow voyage at its last stop's arrival, then one outflow event per outflow
// voyage at its first stop's departure, stably sorted by time. On equal times
// every inflow is applied before any outflow.
func Events(inflow, outflow *schedule.Scheduler) []Event {
	port := inflow.Route.TerminalPort()

	events := make([]Event, 0, inflow.Len()+outflow.Len())
	for _, v := range inflow.Voyages() {
		if len(v.Itinerary) == 0 {
			continue
		}
		events = append(events, Event{
			Time:   v.LastArrival(),
			Action: model.ActionInflow,
			Vessel: v.VesselName,
			Port:   port,
			Volume: v.Capacity,
		})
	}
	for _, v := range outflow.Voyages() {
		if len(v.Itinerary) == 0 {
			continue
		}
		events = append(events, Event{
			Time:   v.Departure(),
			Action: model.ActionOutflow,
			Vessel: v.VesselName,
			Port:   port,
			Volume: v.Capacity,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time.Before(events[j].Time)
	})
	return events
}

package simulation

import (
	"fmt"
	"strconv"

	"github.com/ZHABODAV/fleet-list/internal/model"
	"github.com/ZHABODAV/fleet-list/internal/schedule"
	"github.com/shopspring/decimal"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run replays the inflow and outflow schedules against a fresh tank of the given
// capacity. The schedulers are only read.
func (e *Engine) Run(capacity float64, inflow, outflow *schedule.Scheduler) (*Result, error) {
	if inflow == nil {
		return nil, fmt.Errorf("inflow schedule is nil")
	}
	if outflow == nil {
		return nil, fmt.Errorf("outflow schedule is nil")
	}
	if inflow.Route == nil {
		return nil, &model.ValidationError{Field: "inflow.route", Reason: "is required"}
	}
	if outflow.Route == nil {
		return nil, &model.ValidationError{Field: "outflow.route", Reason: "is required"}
	}
	tank, err := model.NewTank(capacity)
	if err != nil {
		return nil, model.Prefixed("buffer.", err)
	}

	events := Events(inflow, outflow)
	res := &Result{
		Capacity: capacity,
		Port:     inflow.Route.TerminalPort(),
		Log:      make([]LogEntry, 0, len(events)),
		Diagnostics: Diagnostics{
			DiscardedVolume: decimal.Zero,
			UnmetVolume:     decimal.Zero,
			TotalUnloaded:   decimal.Zero,
			TotalLoaded:     decimal.Zero,
		},
	}

	for idx, ev := range events {
		var tr model.TransferResult
		switch ev.Action {
		case model.ActionInflow:
			tr = tank.Unload(ev.Volume)
			res.Diagnostics.TotalUnloaded = res.Diagnostics.TotalUnloaded.Add(tr.Applied)
		case model.ActionOutflow:
			tr = tank.Load(ev.Volume)
			res.Diagnostics.TotalLoaded = res.Diagnostics.TotalLoaded.Add(tr.Applied)
		default:
			return nil, fmt.Errorf("event %d: unknown action %q", idx, ev.Action)
		}

		switch tr.Clamp {
		case model.ClampOverflow:
			res.Diagnostics.OverflowEvents++
			res.Diagnostics.DiscardedVolume = res.Diagnostics.DiscardedVolume.Add(tr.Excess())
		case model.ClampShortage:
			res.Diagnostics.ShortageEvents++
			res.Diagnostics.UnmetVolume = res.Diagnostics.UnmetVolume.Add(tr.Excess())
		}

		res.Log = append(res.Log, LogEntry{
			Index:       idx,
			Time:        ev.Time,
			Vessel:      ev.Vessel,
			Action:      ev.Action,
			Description: describe(ev),
			Volume:      ev.Volume,
			LevelBefore: tr.LevelStart,
			LevelAfter:  tr.LevelEnd,
			Port:        ev.Port,
			Clamp:       tr.Clamp,
		})
	}

	res.FinalLevel = tank.Level
	return res, nil
}

func describe(ev Event) string {
	vol := strconv.FormatFloat(ev.Volume, 'f', -1, 64)
	if ev.Action == model.ActionInflow {
		return "Unload inflow vessel (+" + vol + ")"
	}
	return "Load outflow vessel (-" + vol + ")"
}

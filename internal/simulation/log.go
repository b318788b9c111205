package simulation

import (
	"time"

	"github.com/ZHABODAV/fleet-list/internal/model"
	"github.com/shopspring/decimal"
)

// LogEntry is one applied event.
// The log is the primary artifact of a run; it is append-only while the run is
// in progress and never changes afterwards.
type LogEntry struct {
	Index int

	Time   time.Time
	Vessel string
	Port   string

	Action      model.Action
	Description string
	Volume      float64

	LevelBefore decimal.Decimal
	LevelAfter  decimal.Decimal

	Clamp model.Clamp
}

// Diagnostics counts the events the tank silently clamped.
type Diagnostics struct {
	OverflowEvents  int
	DiscardedVolume decimal.Decimal // unloaded volume that did not fit
	ShortageEvents  int
	UnmetVolume     decimal.Decimal // requested load volume that was not in the tank

	TotalUnloaded decimal.Decimal
	TotalLoaded   decimal.Decimal
}

type Result struct {
	Capacity    float64
	Port        string
	Log         []LogEntry
	FinalLevel  decimal.Decimal
	Diagnostics Diagnostics
}

// TimeLayout formats tank log timestamps.
const TimeLayout = "2006-01-02 15:04"

// TankRow is one log entry flattened for export and charts.
type TankRow struct {
	Time   time.Time `json:"time"`
	Vessel string    `json:"vessel"`
	Action string    `json:"action"`
	Level  float64   `json:"level"`
	Port   string    `json:"port"`
}

// Table returns the log in application order.
func (r *Result) Table() []TankRow {
	rows := make([]TankRow, len(r.Log))
	for i, e := range r.Log {
		rows[i] = TankRow{
			Time:   e.Time,
			Vessel: e.Vessel,
			Action: e.Description,
			Level:  e.LevelAfter.InexactFloat64(),
			Port:   e.Port,
		}
	}
	return rows
}

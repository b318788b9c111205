package model

import (
	"math"

	"github.com/shopspring/decimal"
)

// Tank is the storage buffer at the transfer port.
// Level is kept in decimal so that inflow minus outflow is exact.
type Tank struct {
	Capacity decimal.Decimal
	Level    decimal.Decimal
}

func NewTank(capacity float64) (*Tank, error) {
	if math.IsNaN(capacity) || math.IsInf(capacity, 0) || capacity <= 0 {
		return nil, invalid("capacity", "must be > 0, got %v", capacity)
	}
	return &Tank{
		Capacity: decimal.NewFromFloat(capacity),
		Level:    decimal.Zero,
	}, nil
}

// TransferResult captures what one unload or load did to the tank.
type TransferResult struct {
	Requested  decimal.Decimal
	Applied    decimal.Decimal // volume that actually moved
	LevelStart decimal.Decimal
	LevelEnd   decimal.Decimal
	Clamp      Clamp
}

// Excess is the part of the request that did not move.
func (r TransferResult) Excess() decimal.Decimal {
	return r.Requested.Sub(r.Applied)
}

// Unload adds volume from an arriving vessel, clamping the level at capacity.
// Overflow is discarded.
func (t *Tank) Unload(volume float64) TransferResult {
	req := decimal.NewFromFloat(volume)
	res := TransferResult{Requested: req, LevelStart: t.Level}

	next := t.Level.Add(req)
	if next.GreaterThan(t.Capacity) {
		next = t.Capacity
		res.Clamp = ClampOverflow
	}
	res.Applied = next.Sub(t.Level)
	t.Level = next
	res.LevelEnd = next
	return res
}

// Load draws volume for a departing vessel, clamping the level at zero.
// A shortfall is not an error; the vessel departs with what was available.
func (t *Tank) Load(volume float64) TransferResult {
	req := decimal.NewFromFloat(volume)
	res := TransferResult{Requested: req, LevelStart: t.Level}

	next := t.Level.Sub(req)
	if next.IsNegative() {
		next = decimal.Zero
		res.Clamp = ClampShortage
	}
	res.Applied = t.Level.Sub(next)
	t.Level = next
	res.LevelEnd = next
	return res
}

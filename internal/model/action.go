package model

// Action is the kind of buffer event applied at the transfer port.
// Keep these values stable; they are intended for CSV output.
type Action string

const (
	ActionInflow  Action = "INFLOW"
	ActionOutflow Action = "OUTFLOW"
)

// Clamp records which bound, if any, cut an event short.
type Clamp string

const (
	ClampNone     Clamp = ""
	ClampOverflow Clamp = "OVERFLOW"
	ClampShortage Clamp = "SHORTAGE"
)

package model

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewTank_Validation(t *testing.T) {
	for _, c := range []float64{0, -10} {
		_, err := NewTank(c)
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("NewTank(%v): expected ErrInvalidConfiguration, got %v", c, err)
		}
	}
	tank, err := NewTank(100)
	if err != nil {
		t.Fatalf("NewTank: %v", err)
	}
	if !tank.Level.IsZero() {
		t.Errorf("Expected new tank to start empty, got %s", tank.Level)
	}
}

func TestTank_UnloadClampsAtCapacity(t *testing.T) {
	tank, _ := NewTank(50)

	r := tank.Unload(30)
	if r.Clamp != ClampNone || !tank.Level.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("Expected level 30 unclamped, got %s (%q)", tank.Level, r.Clamp)
	}

	r = tank.Unload(20)
	if r.Clamp != ClampNone {
		t.Errorf("Filling exactly to capacity must not clamp, got %q", r.Clamp)
	}

	r = tank.Unload(30)
	if r.Clamp != ClampOverflow {
		t.Errorf("Expected overflow clamp, got %q", r.Clamp)
	}
	if !tank.Level.Equal(decimal.NewFromInt(50)) {
		t.Errorf("Expected level held at 50, got %s", tank.Level)
	}
	if !r.Applied.IsZero() || !r.Excess().Equal(decimal.NewFromInt(30)) {
		t.Errorf("Expected applied 0 and excess 30, got %s and %s", r.Applied, r.Excess())
	}
}

func TestTank_LoadClampsAtZero(t *testing.T) {
	tank, _ := NewTank(100)
	tank.Unload(10)

	r := tank.Load(25)
	if r.Clamp != ClampShortage {
		t.Errorf("Expected shortage clamp, got %q", r.Clamp)
	}
	if !tank.Level.IsZero() {
		t.Errorf("Expected empty tank, got %s", tank.Level)
	}
	if !r.Applied.Equal(decimal.NewFromInt(10)) {
		t.Errorf("Expected 10 applied, got %s", r.Applied)
	}
	if !r.LevelStart.Equal(decimal.NewFromInt(10)) || !r.LevelEnd.IsZero() {
		t.Errorf("Expected 10→0, got %s→%s", r.LevelStart, r.LevelEnd)
	}
}

func TestTank_ExactArithmetic(t *testing.T) {
	tank, _ := NewTank(1)
	for i := 0; i < 10; i++ {
		tank.Unload(0.1)
	}
	if !tank.Level.Equal(decimal.NewFromInt(1)) {
		t.Errorf("Expected exactly 1 after ten 0.1 unloads, got %s", tank.Level)
	}
	for i := 0; i < 3; i++ {
		tank.Load(0.3)
	}
	if !tank.Level.Equal(decimal.RequireFromString("0.1")) {
		t.Errorf("Expected exactly 0.1, got %s", tank.Level)
	}
}

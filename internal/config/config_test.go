package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZHABODAV/fleet-list/internal/model"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

const riverPreset = `fleet:
  name: "River route"
  vessel_prefix: "River"
  start_date: "2024-04-10"
  vessels: 3
  interval_days: 1
  capacity: 30
  legs:
    - { name: "River_A-B", from: "PortA", to: "PortB", transit_days: 5, operation_days: 1 }
`

func TestDefault_IsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Expected default config to validate: %v", err)
	}
}

func TestLoad_WithPresetAndOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "fleets", "river.yaml"), riverPreset)
	writeFile(t, filepath.Join(dir, "config.yaml"), `
inflow:
  file: "fleets/river"
  vessels: 5
outflow:
  name: "Sea route"
  start_date: "2024-11-20"
  vessels: 4
  interval_days: 1
  capacity: 25
  legs:
    - { name: "Sea_B-C", from: "PortB", to: "PortC", transit_days: 10, operation_days: 1 }
buffer:
  capacity: 100
`)

	c, err := Load(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Inflow.File != "" {
		t.Errorf("Expected preset file to be resolved, still %q", c.Inflow.File)
	}
	if c.Inflow.Vessels != 5 {
		t.Errorf("Expected override of 5 vessels, got %d", c.Inflow.Vessels)
	}
	if c.Inflow.Capacity != 30 || c.Inflow.VesselPrefix != "River" || len(c.Inflow.Legs) != 1 {
		t.Errorf("Expected preset fields to survive, got %+v", c.Inflow)
	}

	s, err := c.Inflow.Scheduler("inflow")
	if err != nil {
		t.Fatalf("Scheduler: %v", err)
	}
	if s.Len() != 5 || s.Route.Name != "River route" {
		t.Errorf("Unexpected scheduler: %d voyages on %q", s.Len(), s.Route.Name)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Errorf("Expected error for missing file")
	}

	writeFile(t, filepath.Join(dir, "bad.yaml"), "inflow: [")
	if _, err := Load(filepath.Join(dir, "bad.yaml")); err == nil {
		t.Errorf("Expected parse error")
	}

	writeFile(t, filepath.Join(dir, "nopreset.yaml"), "inflow:\n  file: nowhere.yaml\n")
	if _, err := Load(filepath.Join(dir, "nopreset.yaml")); err == nil {
		t.Errorf("Expected error for missing preset")
	}
}

func TestValidate_FieldNames(t *testing.T) {
	testCases := []struct {
		name        string
		mutate      func(c *Config)
		expectField string
	}{
		{"inflow vessels", func(c *Config) { c.Inflow.Vessels = 0 }, "inflow.vessels"},
		{"outflow interval", func(c *Config) { c.Outflow.IntervalDays = -1 }, "outflow.interval_days"},
		{"inflow capacity", func(c *Config) { c.Inflow.Capacity = 0 }, "inflow.capacity"},
		{"outflow legs", func(c *Config) { c.Outflow.Legs = nil }, "outflow.legs"},
		{"leg transit", func(c *Config) { c.Inflow.Legs[0].TransitDays = -2 }, "inflow.legs[0].transit_days"},
		{"start date", func(c *Config) { c.Outflow.StartDate = "20/11/2024" }, "outflow.start_date"},
		{"missing start date", func(c *Config) { c.Inflow.StartDate = "" }, "inflow.start_date"},
		{"buffer", func(c *Config) { c.Buffer.Capacity = -1 }, "buffer.capacity"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(&c)
			err := c.Validate()
			if !errors.Is(err, model.ErrInvalidConfiguration) {
				t.Fatalf("Expected ErrInvalidConfiguration, got %v", err)
			}
			var ve *model.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Expected *ValidationError, got %T", err)
			}
			if ve.Field != tc.expectField {
				t.Errorf("Expected field %q, got %q (%v)", tc.expectField, ve.Field, err)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-04-10 ")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year() != 2024 || d.Month() != 4 || d.Day() != 10 || d.Hour() != 0 {
		t.Errorf("Unexpected date %s", d)
	}
	_, err = ParseDate("April 10")
	if err == nil || err.Error() != `start_date must be YYYY-MM-DD, got "April 10"` {
		t.Errorf("Unexpected error %v", err)
	}
}

func TestMergeFleet(t *testing.T) {
	base := Default().Inflow
	base.File = "river.yaml"

	out := MergeFleet(base, FleetConfig{
		StartDate: "2025-01-01",
		Capacity:  45,
	})
	if out.File != "" {
		t.Errorf("Expected File to be cleared, got %q", out.File)
	}
	if out.StartDate != "2025-01-01" || out.Capacity != 45 {
		t.Errorf("Expected overrides to apply, got %+v", out)
	}
	if out.Vessels != 3 || out.IntervalDays != 1 || out.Name != "River route" {
		t.Errorf("Expected base fields to survive, got %+v", out)
	}

	// Zero interval does not override a preset.
	out = MergeFleet(base, FleetConfig{IntervalDays: 0})
	if out.IntervalDays != 1 {
		t.Errorf("Expected interval 1 to survive a zero override, got %v", out.IntervalDays)
	}

	legs := []LegConfig{{Name: "X", From: "P", To: "Q", TransitDays: 1}}
	out = MergeFleet(base, FleetConfig{Legs: legs})
	legs[0].Name = "changed"
	if len(out.Legs) != 1 || out.Legs[0].Name != "X" {
		t.Errorf("Expected override legs to be copied, got %+v", out.Legs)
	}
}

func TestResolveFleets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "river.yaml"), riverPreset)

	c := Default()
	c.Inflow = FleetConfig{File: "river.yaml", StartDate: "2024-05-01"}
	if err := c.ResolveFleets(dir); err != nil {
		t.Fatalf("ResolveFleets: %v", err)
	}
	if c.Inflow.StartDate != "2024-05-01" || c.Inflow.Capacity != 30 {
		t.Errorf("Unexpected resolved fleet %+v", c.Inflow)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Expected resolved config to validate: %v", err)
	}
}

func TestPresetPath(t *testing.T) {
	dir := filepath.Join("srv", "fleets")

	valid := []struct {
		id   string
		want string
	}{
		{"sea", filepath.Join(dir, "sea.yaml")},
		{"sea.yaml", filepath.Join(dir, "sea.yaml")},
		{" river ", filepath.Join(dir, "river.yaml")},
	}
	for _, tc := range valid {
		got, err := PresetPath(dir, tc.id)
		if err != nil {
			t.Errorf("PresetPath(%q): unexpected error %v", tc.id, err)
			continue
		}
		if got != tc.want {
			t.Errorf("PresetPath(%q): expected %s, got %s", tc.id, tc.want, got)
		}
	}

	for _, id := range []string{"", "/etc/passwd", "../x", "..", ".", "fleets/river", `..\x`, "a/../../b"} {
		t.Run(id, func(t *testing.T) {
			_, err := PresetPath(dir, id)
			var ve *model.ValidationError
			if !errors.As(err, &ve) || ve.Field != "file" {
				t.Errorf("Expected file validation error, got %v", err)
			}
		})
	}
}

func TestResolveFleets_RejectsPathsOutsideDir(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "fleets")
	writeFile(t, filepath.Join(dir, "sea.yaml"), riverPreset)
	// Readable and valid, but not a preset of dir.
	writeFile(t, filepath.Join(root, "secret.yaml"), riverPreset)

	for _, file := range []string{filepath.Join(root, "secret.yaml"), "../secret", "../secret.yaml"} {
		t.Run(file, func(t *testing.T) {
			c := Default()
			c.Inflow = FleetConfig{File: file}
			err := c.ResolveFleets(dir)
			var ve *model.ValidationError
			if !errors.As(err, &ve) || ve.Field != "inflow.file" {
				t.Fatalf("Expected inflow.file validation error, got %v", err)
			}
			if c.Inflow.Capacity != 0 {
				t.Errorf("Expected nothing loaded from outside %s, got %+v", dir, c.Inflow)
			}
		})
	}
}

func TestResolveFleets_HidesFileContents(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "broken.yaml"), "secret-token: [")

	c := Default()
	c.Outflow = FleetConfig{File: "broken"}
	err := c.ResolveFleets(dir)
	if err == nil {
		t.Fatal("Expected error for broken preset")
	}
	if want := `outflow.file unknown fleet preset "broken"`; err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
}

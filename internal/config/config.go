package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZHABODAV/fleet-list/internal/model"
	"github.com/ZHABODAV/fleet-list/internal/schedule"

	"gopkg.in/yaml.v3"
)

// DateLayout is the on-disk format of start dates.
const DateLayout = "2006-01-02"

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Inflow  FleetConfig  `yaml:"inflow"`
	Outflow FleetConfig  `yaml:"outflow"`
	Buffer  BufferConfig `yaml:"buffer"`
}

// FleetConfig describes one fleet: its route and how its vessels are dispatched.
//
// File optionally names a preset fleet YAML (e.g. examples/fleets/river.yaml).
// Non-zero fields set here override the preset.
type FleetConfig struct {
	File         string      `yaml:"file"`
	Name         string      `yaml:"name"`
	VesselPrefix string      `yaml:"vessel_prefix"`
	StartDate    string      `yaml:"start_date"`
	Vessels      int         `yaml:"vessels"`
	IntervalDays float64     `yaml:"interval_days"`
	Capacity     float64     `yaml:"capacity"`
	Legs         []LegConfig `yaml:"legs"`
}

type LegConfig struct {
	Name          string  `yaml:"name"`
	From          string  `yaml:"from"`
	To            string  `yaml:"to"`
	TransitDays   float64 `yaml:"transit_days"`
	OperationDays float64 `yaml:"operation_days"`
}

type BufferConfig struct {
	Capacity float64 `yaml:"capacity"`
}

// Default is the reference scenario: three river vessels feeding four sea vessels
// through a 100-unit tank at PortB.
func Default() Config {
	return Config{
		Inflow: FleetConfig{
			Name:         "River route",
			VesselPrefix: "River",
			StartDate:    "2024-04-10",
			Vessels:      3,
			IntervalDays: 1,
			Capacity:     30,
			Legs: []LegConfig{
				{Name: "River_A-B", From: "PortA", To: "PortB", TransitDays: 5, OperationDays: 1},
			},
		},
		Outflow: FleetConfig{
			Name:         "Sea route",
			VesselPrefix: "Sea",
			StartDate:    "2024-11-20",
			Vessels:      4,
			IntervalDays: 1,
			Capacity:     25,
			Legs: []LegConfig{
				{Name: "Sea_B-C", From: "PortB", To: "PortC", TransitDays: 10, OperationDays: 1},
			},
		},
		Buffer: BufferConfig{Capacity: 100},
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	if c.Inflow, err = resolveFleet(dir, c.Inflow); err != nil {
		return nil, fmt.Errorf("inflow: %w", err)
	}
	if c.Outflow, err = resolveFleet(dir, c.Outflow); err != nil {
		return nil, fmt.Errorf("outflow: %w", err)
	}
	return &c, nil
}

// ResolveFleets loads the preset files named by the fleets from dir. Unlike
// Load, each file is a bare preset ID resolved to dir/<id>.yaml and paths are
// rejected.
func (c *Config) ResolveFleets(dir string) error {
	var err error
	if c.Inflow, err = resolvePreset(dir, c.Inflow); err != nil {
		return model.Prefixed("inflow.", err)
	}
	if c.Outflow, err = resolvePreset(dir, c.Outflow); err != nil {
		return model.Prefixed("outflow.", err)
	}
	return nil
}

// PresetPath maps a preset ID to its file under dir. "sea" and "sea.yaml" name
// the same preset.
func PresetPath(dir, id string) (string, error) {
	id = strings.TrimSuffix(strings.TrimSpace(id), ".yaml")
	if id == "" || id == "." || id == ".." || filepath.IsAbs(id) || filepath.Base(id) != id || strings.ContainsAny(id, `/\`) {
		return "", &model.ValidationError{Field: "file", Reason: fmt.Sprintf("must be a fleet preset ID, got %q", id)}
	}
	return filepath.Join(dir, id+".yaml"), nil
}

func resolvePreset(dir string, f FleetConfig) (FleetConfig, error) {
	if f.File == "" {
		return f, nil
	}
	path, err := PresetPath(dir, f.File)
	if err != nil {
		return FleetConfig{}, err
	}
	loaded, err := LoadFleetFile(path)
	if err != nil {
		// The underlying error can quote file contents.
		return FleetConfig{}, &model.ValidationError{Field: "file", Reason: fmt.Sprintf("unknown fleet preset %q", strings.TrimSuffix(f.File, ".yaml"))}
	}
	return MergeFleet(loaded, f), nil
}

func resolveFleet(dir string, f FleetConfig) (FleetConfig, error) {
	if f.File == "" {
		return f, nil
	}
	fleetPath := f.File
	if !filepath.IsAbs(fleetPath) {
		// Prefer interpreting relative paths as relative to the config file directory,
		// but fall back to the provided path (relative to cwd) if that doesn't exist.
		cand := filepath.Join(dir, fleetPath)
		if _, err := os.Stat(cand); err == nil {
			fleetPath = cand
		} else if _, err := os.Stat(cand + ".yaml"); err == nil {
			fleetPath = cand + ".yaml"
		}
	}
	loaded, err := LoadFleetFile(fleetPath)
	if err != nil {
		return FleetConfig{}, err
	}
	return MergeFleet(loaded, f), nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if _, err := c.Inflow.Scheduler("inflow"); err != nil {
		return model.Prefixed("inflow.", err)
	}
	if _, err := c.Outflow.Scheduler("outflow"); err != nil {
		return model.Prefixed("outflow.", err)
	}
	if _, err := model.NewTank(c.Buffer.Capacity); err != nil {
		return model.Prefixed("buffer.", err)
	}
	return nil
}

// Route builds the model route. defaultName is used when the fleet has no name.
func (f FleetConfig) Route(defaultName string) (*model.Route, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		name = defaultName
	}
	legs := make([]model.Leg, 0, len(f.Legs))
	for i, lc := range f.Legs {
		leg, err := model.NewLeg(lc.Name, lc.From, lc.To, lc.TransitDays, lc.OperationDays)
		if err != nil {
			return nil, model.Prefixed(fmt.Sprintf("legs[%d].", i), err)
		}
		legs = append(legs, leg)
	}
	return model.NewRoute(name, f.Capacity, legs...)
}

func (f FleetConfig) Params() (schedule.Params, error) {
	start, err := ParseDate(f.StartDate)
	if err != nil {
		return schedule.Params{}, err
	}
	return schedule.Params{
		StartDate:    start,
		VesselCount:  f.Vessels,
		IntervalDays: f.IntervalDays,
		VesselPrefix: f.VesselPrefix,
	}, nil
}

// Scheduler builds the route and generates this fleet's voyages.
func (f FleetConfig) Scheduler(defaultName string) (*schedule.Scheduler, error) {
	route, err := f.Route(defaultName)
	if err != nil {
		return nil, err
	}
	p, err := f.Params()
	if err != nil {
		return nil, err
	}
	return schedule.New(route, p)
}

// ParseDate parses a YYYY-MM-DD start date at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, &model.ValidationError{Field: "start_date", Reason: "is required"}
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &model.ValidationError{Field: "start_date", Reason: fmt.Sprintf("must be YYYY-MM-DD, got %q", s)}
	}
	return t, nil
}

type fleetFileWrapper struct {
	Fleet FleetConfig `yaml:"fleet"`
}

// LoadFleetFile reads a preset fleet file of the form `fleet: {...}`.
func LoadFleetFile(path string) (FleetConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return FleetConfig{}, err
	}
	var w fleetFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return FleetConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return w.Fleet, nil
}

// MergeFleet overlays non-zero fields from override onto base.
// This is used when loading a fleet file and then applying overrides from the config or request.
func MergeFleet(base, override FleetConfig) FleetConfig {
	out := base
	out.File = ""
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.VesselPrefix != "" {
		out.VesselPrefix = override.VesselPrefix
	}
	if override.StartDate != "" {
		out.StartDate = override.StartDate
	}
	if override.Vessels != 0 {
		out.Vessels = override.Vessels
	}
	// Note: a zero interval is meaningful (simultaneous departures) but cannot override a preset.
	if override.IntervalDays != 0 {
		out.IntervalDays = override.IntervalDays
	}
	if override.Capacity != 0 {
		out.Capacity = override.Capacity
	}
	if len(override.Legs) > 0 {
		out.Legs = append([]LegConfig(nil), override.Legs...)
	}
	return out
}

// Package planning runs complete planning cycles: two fleets scheduled, the
// transfer tank replayed, the result summarized and kept for later retrieval.
package planning

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ZHABODAV/fleet-list/internal/analysis"
	"github.com/ZHABODAV/fleet-list/internal/config"
	"github.com/ZHABODAV/fleet-list/internal/schedule"
	"github.com/ZHABODAV/fleet-list/internal/simulation"

	"github.com/google/uuid"
)

// PlanID uniquely identifies a stored plan.
type PlanID string

// ErrUnknownPlan is returned when a plan is missing or has expired.
var ErrUnknownPlan = errors.New("unknown plan")

// Plan is the complete, immutable output of one planning cycle.
type Plan struct {
	ID        PlanID
	CreatedAt time.Time
	Config    config.Config

	Inflow  *schedule.Scheduler
	Outflow *schedule.Scheduler
	Result  *simulation.Result

	Summary analysis.Summary
	Totals  analysis.FleetTotals
	Vessels []analysis.VesselTotal
}

// Service is the interface that provides planning methods.
type Service interface {
	// Plan validates cfg, schedules both fleets, replays the tank and stores the plan.
	Plan(ctx context.Context, cfg config.Config) (*Plan, error)

	// Load returns a previously stored plan.
	Load(ctx context.Context, id PlanID) (*Plan, error)
}

type service struct {
	store  *Store
	engine *simulation.Engine
	now    func() time.Time
}

// NewService creates a planning service that keeps its plans in store.
func NewService(store *Store) Service {
	return &service{
		store:  store,
		engine: simulation.New(),
		now:    time.Now,
	}
}

func (s *service) Plan(ctx context.Context, cfg config.Config) (*Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Every run builds its own routes, schedules and tank.
	inflow, err := cfg.Inflow.Scheduler("inflow")
	if err != nil {
		return nil, fmt.Errorf("inflow: %w", err)
	}
	outflow, err := cfg.Outflow.Scheduler("outflow")
	if err != nil {
		return nil, fmt.Errorf("outflow: %w", err)
	}
	res, err := s.engine.Run(cfg.Buffer.Capacity, inflow, outflow)
	if err != nil {
		return nil, err
	}
	summary, err := analysis.Summarize(inflow, outflow, res)
	if err != nil {
		return nil, err
	}

	p := &Plan{
		ID:        PlanID(uuid.New().String()),
		CreatedAt: s.now(),
		Config:    cfg,
		Inflow:    inflow,
		Outflow:   outflow,
		Result:    res,
		Summary:   summary,
		Totals:    analysis.Totals(inflow, outflow, res),
		Vessels: append(
			analysis.VesselTotals(analysis.FleetInflow, inflow),
			analysis.VesselTotals(analysis.FleetOutflow, outflow)...,
		),
	}
	s.store.Put(p)
	return p, nil
}

func (s *service) Load(ctx context.Context, id PlanID) (*Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, ErrUnknownPlan
	}
	p, ok := s.store.Get(id)
	if !ok {
		return nil, ErrUnknownPlan
	}
	return p, nil
}

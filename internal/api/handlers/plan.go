package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/ZHABODAV/fleet-list/internal/analysis"
	"github.com/ZHABODAV/fleet-list/internal/api/models"
	"github.com/ZHABODAV/fleet-list/internal/config"
	"github.com/ZHABODAV/fleet-list/internal/export"
	"github.com/ZHABODAV/fleet-list/internal/model"
	"github.com/ZHABODAV/fleet-list/internal/planning"
	"github.com/ZHABODAV/fleet-list/internal/schedule"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/ratelimit"
	"github.com/sony/gobreaker"
)

// PlanHandler handles planning requests
type PlanHandler struct {
	svc      planning.Service
	fleetDir string
	logger   log.Logger
}

// NewPlanHandler creates a new plan handler. Fleet presets named in requests
// are looked up in fleetDir.
func NewPlanHandler(svc planning.Service, fleetDir string, logger log.Logger) *PlanHandler {
	return &PlanHandler{svc: svc, fleetDir: fleetDir, logger: logger}
}

// CreatePlan handles POST /api/v1/plans
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	cfg := ToConfig(req.Config)
	if err := cfg.ResolveFleets(h.fleetDir); err != nil {
		h.writeError(c, err)
		return
	}

	plan, err := h.svc.Plan(c.Request.Context(), cfg)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, BuildResponse(plan, req.Options))
}

// GetPlan handles GET /api/v1/plans/:id
func (h *PlanHandler) GetPlan(c *gin.Context) {
	plan, err := h.svc.Load(c.Request.Context(), planning.PlanID(c.Param("id")))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, BuildResponse(plan, models.AllTables()))
}

// ExportPlan handles GET /api/v1/plans/:id/export/:table
func (h *PlanHandler) ExportPlan(c *gin.Context) {
	plan, err := h.svc.Load(c.Request.Context(), planning.PlanID(c.Param("id")))
	if err != nil {
		h.writeError(c, err)
		return
	}

	table := c.Param("table")
	var write func(io.Writer) error
	switch table {
	case "inflow":
		write = func(w io.Writer) error { return export.WriteItineraryCSV(w, plan.Inflow.Table()) }
	case "outflow":
		write = func(w io.Writer) error { return export.WriteItineraryCSV(w, plan.Outflow.Table()) }
	case "tank":
		write = func(w io.Writer) error { return export.WriteTankCSV(w, plan.Result.Table()) }
	case "summary":
		write = func(w io.Writer) error { return export.WriteSummaryCSV(w, plan.Summary) }
	default:
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "UNKNOWN_TABLE",
				Message: "table must be one of inflow, outflow, tank, summary",
				Details: map[string]interface{}{"table": table},
			},
		})
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+export.FileName(table, time.Now())+`"`)
	c.Status(http.StatusOK)
	if err := write(c.Writer); err != nil {
		h.logger.Log("handler", "export", "id", plan.ID, "table", table, "err", err)
	}
}

// writeError maps service errors onto the API error envelope.
func (h *PlanHandler) writeError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "INTERNAL_ERROR"
	var details map[string]interface{}

	var ve *model.ValidationError
	switch {
	case errors.As(err, &ve):
		status, code = http.StatusBadRequest, "INVALID_CONFIG"
		details = map[string]interface{}{"field": ve.Field}
	case errors.Is(err, model.ErrInvalidConfiguration):
		status, code = http.StatusBadRequest, "INVALID_CONFIG"
	case errors.Is(err, model.ErrEmptyResult):
		status, code = http.StatusUnprocessableEntity, "EMPTY_RESULT"
	case errors.Is(err, planning.ErrUnknownPlan):
		status, code = http.StatusNotFound, "PLAN_NOT_FOUND"
	case errors.Is(err, ratelimit.ErrLimited):
		status, code = http.StatusTooManyRequests, "RATE_LIMITED"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests),
		errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status, code = http.StatusServiceUnavailable, "UNAVAILABLE"
	}

	if status == http.StatusInternalServerError {
		h.logger.Log("handler", "plan", "path", c.Request.URL.Path, "err", err)
	}
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
			Details: details,
		},
	})
}

// ToConfig converts the request shape into a config.Config.
func ToConfig(req models.PlanConfig) config.Config {
	return config.Config{
		Inflow:  toFleet(req.Inflow),
		Outflow: toFleet(req.Outflow),
		Buffer:  config.BufferConfig{Capacity: req.Buffer.Capacity},
	}
}

func toFleet(f models.FleetConfig) config.FleetConfig {
	legs := make([]config.LegConfig, len(f.Legs))
	for i, l := range f.Legs {
		legs[i] = config.LegConfig{
			Name:          l.Name,
			From:          l.From,
			To:            l.To,
			TransitDays:   l.TransitDays,
			OperationDays: l.OperationDays,
		}
	}
	return config.FleetConfig{
		File:         f.File,
		Name:         f.Name,
		VesselPrefix: f.VesselPrefix,
		StartDate:    f.StartDate,
		Vessels:      f.Vessels,
		IntervalDays: f.IntervalDays,
		Capacity:     f.Capacity,
		Legs:         legs,
	}
}

// FromConfig converts a config.Config into the request shape.
func FromConfig(c config.Config) models.PlanConfig {
	return models.PlanConfig{
		Inflow:  fromFleet(c.Inflow),
		Outflow: fromFleet(c.Outflow),
		Buffer:  models.BufferConfig{Capacity: c.Buffer.Capacity},
	}
}

func fromFleet(f config.FleetConfig) models.FleetConfig {
	legs := make([]models.LegConfig, len(f.Legs))
	for i, l := range f.Legs {
		legs[i] = models.LegConfig{
			Name:          l.Name,
			From:          l.From,
			To:            l.To,
			TransitDays:   l.TransitDays,
			OperationDays: l.OperationDays,
		}
	}
	return models.FleetConfig{
		File:         f.File,
		Name:         f.Name,
		VesselPrefix: f.VesselPrefix,
		StartDate:    f.StartDate,
		Vessels:      f.Vessels,
		IntervalDays: f.IntervalDays,
		Capacity:     f.Capacity,
		Legs:         legs,
	}
}

// BuildResponse renders a plan, including the tables selected by opts.
func BuildResponse(p *planning.Plan, opts models.PlanOptions) models.PlanResponse {
	s := p.Summary
	t := p.Totals
	resp := models.PlanResponse{
		ID:        string(p.ID),
		Status:    "completed",
		CreatedAt: p.CreatedAt,
		Summary: models.PlanSummary{
			InflowVesselCount:  s.InflowVessels,
			OutflowVesselCount: s.OutflowVessels,
			InflowCapacity:     s.InflowCapacity,
			OutflowCapacity:    s.OutflowCapacity,
			MaxLevel:           s.MaxLevel,
			MinLevel:           s.MinLevel,
			BufferCapacity:     s.BufferCapacity,
			InflowStartDate:    s.InflowStart.Format(schedule.DateLayout),
			OutflowStartDate:   s.OutflowStart.Format(schedule.DateLayout),
			CycleLengthDays:    s.CycleDays,
		},
		Diagnostics: models.Diagnostics{
			InflowOffered:   t.InflowOffered,
			OutflowDemanded: t.OutflowDemanded,
			Unloaded:        t.Unloaded,
			Loaded:          t.Loaded,
			FinalLevel:      t.FinalLevel,
			OverflowEvents:  t.OverflowEvents,
			DiscardedVolume: t.DiscardedVolume,
			ShortageEvents:  t.ShortageEvents,
			UnmetVolume:     t.UnmetVolume,
		},
	}

	if opts.IncludeItineraries {
		resp.InflowItinerary = convertItinerary(p.Inflow.Table())
		resp.OutflowItinerary = convertItinerary(p.Outflow.Table())
	}
	if opts.IncludeLog {
		for _, r := range p.Result.Table() {
			resp.TankLog = append(resp.TankLog, models.TankRow{
				Time:   r.Time,
				Vessel: r.Vessel,
				Action: r.Action,
				Level:  r.Level,
				Port:   r.Port,
			})
		}
	}
	if opts.IncludeVessels {
		for _, v := range p.Vessels {
			resp.Vessels = append(resp.Vessels, models.VesselTotal{
				Fleet:         v.Fleet,
				Vessel:        v.Vessel,
				Legs:          v.Legs,
				TransitDays:   v.TransitDays,
				OperationDays: v.OperationDays,
				VoyageDays:    v.VoyageDays,
				Volume:        v.Volume,
				Departure:     v.Departure,
				FinalArrival:  v.FinalArrival,
			})
		}
	}
	if opts.IncludeChart {
		for _, b := range analysis.Bars(p.Inflow, p.Outflow) {
			resp.Chart = append(resp.Chart, models.GanttBar{
				Fleet:  b.Fleet,
				Vessel: b.Vessel,
				Leg:    b.Leg,
				Label:  b.Label,
				Start:  b.Start,
				Finish: b.Finish,
			})
		}
	}
	return resp
}

func convertItinerary(rows []schedule.ItineraryRow) []models.ItineraryRow {
	out := make([]models.ItineraryRow, len(rows))
	for i, r := range rows {
		out[i] = models.ItineraryRow{
			Vessel:        r.Vessel,
			Leg:           r.Leg,
			From:          r.From,
			To:            r.To,
			Departure:     r.Departure,
			Arrival:       r.Arrival,
			OperationEnd:  r.OperationEnd,
			TransitDays:   r.TransitDays,
			OperationDays: r.OperationDays,
		}
	}
	return out
}

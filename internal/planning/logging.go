package planning

import (
	"context"
	"time"

	"github.com/go-kit/kit/log"

	"github.com/ZHABODAV/fleet-list/internal/config"
)

type loggingService struct {
	logger log.Logger
	Service
}

// NewLoggingService returns a new instance of a logging Service.
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{logger, s}
}

func (s *loggingService) Plan(ctx context.Context, cfg config.Config) (p *Plan, err error) {
	defer func(begin time.Time) {
		kv := []interface{}{
			"method", "plan",
			"inflow_vessels", cfg.Inflow.Vessels,
			"outflow_vessels", cfg.Outflow.Vessels,
			"buffer_capacity", cfg.Buffer.Capacity,
		}
		if p != nil {
			kv = append(kv,
				"id", p.ID,
				"events", len(p.Result.Log),
				"overflows", p.Result.Diagnostics.OverflowEvents,
				"shortages", p.Result.Diagnostics.ShortageEvents,
			)
		}
		kv = append(kv, "took", time.Since(begin), "err", err)
		s.logger.Log(kv...)
	}(time.Now())
	return s.Service.Plan(ctx, cfg)
}

func (s *loggingService) Load(ctx context.Context, id PlanID) (p *Plan, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "load",
			"id", id,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.Service.Load(ctx, id)
}

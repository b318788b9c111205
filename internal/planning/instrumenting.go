package planning

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"

	"github.com/ZHABODAV/fleet-list/internal/config"
)

type instrumentingService struct {
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
	clampEvents    metrics.Counter
	finalLevel     metrics.Gauge
	Service
}

// NewInstrumentingService returns an instance of an instrumenting Service.
// requestCount and requestLatency are labelled by "method"; clampEvents by "kind".
func NewInstrumentingService(requestCount metrics.Counter, requestLatency metrics.Histogram, clampEvents metrics.Counter, finalLevel metrics.Gauge, s Service) Service {
	return &instrumentingService{
		requestCount:   requestCount,
		requestLatency: requestLatency,
		clampEvents:    clampEvents,
		finalLevel:     finalLevel,
		Service:        s,
	}
}

func (s *instrumentingService) Plan(ctx context.Context, cfg config.Config) (*Plan, error) {
	defer func(begin time.Time) {
		s.requestCount.With("method", "plan").Add(1)
		s.requestLatency.With("method", "plan").Observe(time.Since(begin).Seconds())
	}(time.Now())

	p, err := s.Service.Plan(ctx, cfg)
	if err != nil {
		return nil, err
	}
	d := p.Result.Diagnostics
	s.clampEvents.With("kind", "overflow").Add(float64(d.OverflowEvents))
	s.clampEvents.With("kind", "shortage").Add(float64(d.ShortageEvents))
	s.finalLevel.Set(p.Result.FinalLevel.InexactFloat64())
	return p, nil
}

func (s *instrumentingService) Load(ctx context.Context, id PlanID) (*Plan, error) {
	defer func(begin time.Time) {
		s.requestCount.With("method", "load").Add(1)
		s.requestLatency.With("method", "load").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return s.Service.Load(ctx, id)
}

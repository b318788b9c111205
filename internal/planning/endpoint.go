package planning

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/go-kit/kit/circuitbreaker"
	"github.com/go-kit/kit/endpoint"
	"github.com/go-kit/kit/ratelimit"
	"github.com/go-kit/kit/tracing/opentracing"
	"github.com/go-kit/kit/tracing/zipkin"

	stdopentracing "github.com/opentracing/opentracing-go"
	stdzipkin "github.com/openzipkin/zipkin-go"
	"github.com/sony/gobreaker"

	"github.com/ZHABODAV/fleet-list/internal/config"
)

type planRequest struct {
	Config config.Config
}

type planResponse struct {
	Plan *Plan
	Err  error
}

func (r planResponse) error() error { return r.Err }

func makePlanEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(planRequest)
		p, err := s.Plan(ctx, req.Config)
		return planResponse{Plan: p, Err: err}, nil
	}
}

type loadPlanRequest struct {
	ID PlanID
}

type loadPlanResponse struct {
	Plan *Plan
	Err  error
}

func (r loadPlanResponse) error() error { return r.Err }

func makeLoadPlanEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(loadPlanRequest)
		p, err := s.Load(ctx, req.ID)
		return loadPlanResponse{Plan: p, Err: err}, nil
	}
}

// Limits configures the per-endpoint rate limiter.
type Limits struct {
	RPS   float64
	Burst int
}

// Set collects all of the endpoints that compose the planning service.
// Set itself implements Service so transports can stay unaware of go-kit.
type Set struct {
	PlanEndpoint     endpoint.Endpoint
	LoadPlanEndpoint endpoint.Endpoint
}

// NewSet returns a Set that wraps the provided service, and wires in all of the
// expected endpoint middlewares. zipkinTracer may be nil.
func NewSet(svc Service, limits Limits, otTracer stdopentracing.Tracer, zipkinTracer *stdzipkin.Tracer) Set {
	if otTracer == nil {
		otTracer = stdopentracing.GlobalTracer()
	}
	return Set{
		PlanEndpoint:     wrap(makePlanEndpoint(svc), "Plan", limits, otTracer, zipkinTracer),
		LoadPlanEndpoint: wrap(makeLoadPlanEndpoint(svc), "LoadPlan", limits, otTracer, zipkinTracer),
	}
}

func wrap(e endpoint.Endpoint, name string, limits Limits, otTracer stdopentracing.Tracer, zipkinTracer *stdzipkin.Tracer) endpoint.Endpoint {
	e = circuitbreaker.Gobreaker(gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    name,
		Timeout: 30 * time.Second,
	}))(e)
	// The limiter sits outside the breaker so rejected calls never count as failures.
	if limits.RPS > 0 {
		burst := limits.Burst
		if burst < 1 {
			burst = 1
		}
		e = ratelimit.NewErroringLimiter(rate.NewLimiter(rate.Limit(limits.RPS), burst))(e)
	}
	e = opentracing.TraceServer(otTracer, name)(e)
	if zipkinTracer != nil {
		e = zipkin.TraceEndpoint(zipkinTracer, name)(e)
	}
	return e
}

func (s Set) Plan(ctx context.Context, cfg config.Config) (*Plan, error) {
	resp, err := s.PlanEndpoint(ctx, planRequest{Config: cfg})
	if err != nil {
		return nil, err
	}
	r := resp.(planResponse)
	return r.Plan, r.error()
}

func (s Set) Load(ctx context.Context, id PlanID) (*Plan, error) {
	resp, err := s.LoadPlanEndpoint(ctx, loadPlanRequest{ID: id})
	if err != nil {
		return nil, err
	}
	r := resp.(loadPlanResponse)
	return r.Plan, r.error()
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/ZHABODAV/fleet-list/internal/api"
	"github.com/ZHABODAV/fleet-list/internal/api/handlers"
	"github.com/ZHABODAV/fleet-list/internal/planning"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/kit/log"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	stdzipkin "github.com/openzipkin/zipkin-go"
	zipkinhttp "github.com/openzipkin/zipkin-go/reporter/http"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	var logger log.Logger
	logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	ttl := envDuration(logger, "PLAN_TTL", time.Hour)
	rps := envFloat(logger, "RATE_LIMIT_RPS", 10)

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	var zipkinTracer *stdzipkin.Tracer
	if url := os.Getenv("ZIPKIN_URL"); url != "" {
		reporter := zipkinhttp.NewReporter(url)
		defer reporter.Close()
		ep, err := stdzipkin.NewEndpoint("fleet-planner", "localhost:"+port)
		if err != nil {
			logger.Log("during", "zipkin endpoint", "err", err)
			os.Exit(1)
		}
		zipkinTracer, err = stdzipkin.NewTracer(reporter, stdzipkin.WithLocalEndpoint(ep))
		if err != nil {
			logger.Log("during", "zipkin tracer", "err", err)
			os.Exit(1)
		}
		logger.Log("tracer", "zipkin", "url", url)
	}

	store := planning.NewStore(ttl, 5*time.Minute)
	defer store.Close()

	fieldKeys := []string{"method"}

	var svc planning.Service
	svc = planning.NewService(store)
	svc = planning.NewLoggingService(log.With(logger, "component", "planning"), svc)
	svc = planning.NewInstrumentingService(
		kitprometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: "fleet",
			Subsystem: "planning",
			Name:      "request_count",
			Help:      "Number of requests received.",
		}, fieldKeys),
		kitprometheus.NewSummaryFrom(stdprometheus.SummaryOpts{
			Namespace: "fleet",
			Subsystem: "planning",
			Name:      "request_latency_seconds",
			Help:      "Total duration of requests in seconds.",
		}, fieldKeys),
		kitprometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: "fleet",
			Subsystem: "tank",
			Name:      "clamp_events_total",
			Help:      "Tank events cut short by the capacity or empty bound.",
		}, []string{"kind"}),
		kitprometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: "fleet",
			Subsystem: "tank",
			Name:      "final_level",
			Help:      "Tank level after the last event of the most recent plan.",
		}, []string{}),
		svc,
	)
	set := planning.NewSet(svc, planning.Limits{RPS: rps, Burst: int(rps) + 1}, nil, zipkinTracer)

	fleetDir := handlers.ResolveFleetDir("")
	logger.Log("fleet_dir", fleetDir)

	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}
	if _, err := os.Stat(staticDir); err != nil {
		logger.Log("static_dir", staticDir, "msg", "not found, skipping static file serving")
		staticDir = ""
	}

	router := api.NewRouter(set, logger, api.Options{
		FleetDir:       fleetDir,
		StaticDir:      staticDir,
		MetricsHandler: promhttp.Handler(),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: router,
	}

	errs := make(chan error, 2)
	go func() {
		logger.Log("transport", "http", "address", srv.Addr, "msg", "listening")
		errs <- srv.ListenAndServe()
	}()
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		errs <- fmt.Errorf("%s", <-c)
	}()

	logger.Log("terminated", <-errs)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log("during", "shutdown", "err", err)
	}
}

func envDuration(logger log.Logger, key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logger.Log("env", key, "value", v, "err", err, "using", def)
		return def
	}
	return d
}

func envFloat(logger log.Logger, key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		logger.Log("env", key, "value", v, "err", err, "using", def)
		return def
	}
	return f
}

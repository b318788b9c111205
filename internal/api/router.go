package api

import (
	"net/http"
	"strings"

	"github.com/ZHABODAV/fleet-list/internal/api/handlers"
	"github.com/ZHABODAV/fleet-list/internal/api/middleware"
	"github.com/ZHABODAV/fleet-list/internal/planning"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/kit/log"
)

// Options configure NewRouter.
type Options struct {
	FleetDir       string
	StaticDir      string       // optional SPA bundle
	MetricsHandler http.Handler // optional, served at /metrics
}

// NewRouter wires middleware, handlers and routes around svc.
func NewRouter(svc planning.Service, logger log.Logger, opts Options) *gin.Engine {
	router := gin.New()

	router.Use(middleware.ErrorHandler(log.With(logger, "component", "recovery")))
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(log.With(logger, "component", "http")))

	planHandler := handlers.NewPlanHandler(svc, opts.FleetDir, log.With(logger, "component", "plans"))
	fleetHandler := handlers.NewFleetHandler(opts.FleetDir, log.With(logger, "component", "fleets"))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if opts.MetricsHandler != nil {
		router.GET("/metrics", gin.WrapH(opts.MetricsHandler))
	}

	api := router.Group("/api/v1")
	{
		api.POST("/plans", planHandler.CreatePlan)
		api.GET("/plans/:id", planHandler.GetPlan)
		api.GET("/plans/:id/export/:table", planHandler.ExportPlan)

		api.GET("/fleets", fleetHandler.ListFleets)
		api.GET("/defaults", handlers.GetDefaults)
	}

	if opts.StaticDir != "" {
		router.Static("/assets", opts.StaticDir+"/assets")
		router.StaticFile("/favicon.ico", opts.StaticDir+"/favicon.ico")

		// Serve index.html for all non-API routes (SPA routing)
		router.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api") {
				c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
				return
			}
			c.File(opts.StaticDir + "/index.html")
		})
	}

	return router
}

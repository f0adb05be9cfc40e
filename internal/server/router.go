// Package server assembles the echo engine for the sales API.
package server

import (
	"context"
	"net/http"

	"sales-analytics/internal/config"
	"sales-analytics/internal/handlers"
	"sales-analytics/internal/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const bodyLimit = "8M"

// Router holds the echo engine and handler dependencies
type Router struct {
	engine         *echo.Echo
	cfg            *config.Config
	registry       *prometheus.Registry
	healthHandler  *handlers.HealthCheckHandler
	salesHandler   *handlers.SalesHandler
	devHandler     *handlers.DevHandler
	docsHandler    *handlers.DocsHandler
	authMiddleware echo.MiddlewareFunc
}

// NewRouter creates a router. authMiddleware may be nil to leave writes
// open; docsHandler may be nil when no documentation is shipped.
func NewRouter(
	cfg *config.Config,
	registry *prometheus.Registry,
	healthHandler *handlers.HealthCheckHandler,
	salesHandler *handlers.SalesHandler,
	devHandler *handlers.DevHandler,
	docsHandler *handlers.DocsHandler,
	authMiddleware echo.MiddlewareFunc,
) *Router {
	return &Router{
		cfg:            cfg,
		registry:       registry,
		healthHandler:  healthHandler,
		salesHandler:   salesHandler,
		devHandler:     devHandler,
		docsHandler:    docsHandler,
		authMiddleware: authMiddleware,
	}
}

// Setup configures and returns the echo engine with all routes. ctx bounds
// background work started by middleware.
func (r *Router) Setup(ctx context.Context) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(r.registry)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: r.cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, middleware.TraceIDHeader},
	}))
	e.Use(echomiddleware.BodyLimit(bodyLimit))

	r.engine = e

	r.setupOperationalRoutes()
	r.setupAPIRoutes(middleware.RateLimiter(ctx, r.cfg.Security))

	return e
}

// setupOperationalRoutes configures health, metrics and docs endpoints
func (r *Router) setupOperationalRoutes() {
	r.engine.GET("/health", r.healthHandler.HealthCheck)
	r.engine.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))

	if r.docsHandler != nil {
		r.engine.GET("/docs", r.docsHandler.ServeScalarUI)
		r.engine.GET("/docs/openapi.json", r.docsHandler.ServeOpenAPI)
	}
}

// setupAPIRoutes configures the versioned sales API
func (r *Router) setupAPIRoutes(rateLimiter echo.MiddlewareFunc) {
	v1 := r.engine.Group("/api/v1", rateLimiter)

	writes := []echo.MiddlewareFunc{}
	if r.authMiddleware != nil {
		writes = append(writes, r.authMiddleware)
	}

	sales := v1.Group("/sales")
	sales.POST("", r.salesHandler.CreateSales, writes...)
	sales.GET("", r.salesHandler.ListSales)
	sales.GET("/category-totals", r.salesHandler.GetCategoryTotals)
	sales.GET("/category-totals/:category", r.salesHandler.GetCategorySales)
	sales.POST("/aggregate", r.salesHandler.AggregateSales)

	if r.cfg.IsDevelopment() && r.devHandler != nil {
		dev := v1.Group("/dev", writes...)
		dev.POST("/seed", r.devHandler.SeedSales)
		dev.DELETE("/sales", r.devHandler.ResetSales)
	}
}

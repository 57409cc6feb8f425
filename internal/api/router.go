// Package api provides the HTTP API for HomeStash.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/homestash/homestash/internal/api/handler"
	"github.com/homestash/homestash/internal/api/middleware"
	"github.com/homestash/homestash/internal/api/response"
	"github.com/homestash/homestash/internal/api/validation"
	"github.com/homestash/homestash/internal/wfh"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version     string
	BuildTime   string
	Logger      zerolog.Logger
	ServiceName string
	Metrics     *middleware.Metrics
	WFHService  *wfh.Service
	Validator   *validation.Validator
	RequireTLS  bool
	CORS        middleware.CORSConfig
	// ComputeRateLimit overrides middleware.ComputeRateLimit when RequestLimit is set.
	ComputeRateLimit middleware.RateLimitConfig
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "homestash-api"
	}

	computeLimit := middleware.ComputeRateLimit
	if cfg.ComputeRateLimit.RequestLimit > 0 {
		computeLimit = cfg.ComputeRateLimit
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.CORS(cfg.CORS))       // Browser front-ends
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS(cfg.RequireTLS))
	r.Use(middleware.ContentTypeJSON)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, r, "no route matches "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w, r, r.Method+" is not allowed on "+r.URL.Path)
	})

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, map[string]handler.ReadinessCheck{
		"wfh-calculator": cfg.WFHService.Ready,
	})
	metadataHandler := handler.NewMetadataHandler()
	wfhHandler := handler.NewWFHHandler(cfg.WFHService, cfg.Validator, cfg.Logger)

	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)
	computeRateLimit := middleware.RateLimitByIP(computeLimit)

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
		})

		r.Route("/metadata", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/enums", metadataHandler.GetEnums)
		})

		r.Route("/wfh", func(r chi.Router) {
			r.With(standardRateLimit).Get("/defaults", wfhHandler.GetDefaults)
			// 30 req/min per IP unless overridden by config
			r.With(computeRateLimit, middleware.RequireJSON).Post("/schedule:compute", wfhHandler.ComputeSchedule)
		})
	})

	return r
}

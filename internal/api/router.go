package api

import (
	"banco-api/internal/api/handler"
	mw "banco-api/internal/api/middleware"
	"banco-api/internal/config"
	"banco-api/internal/domain/customer"
	"log/slog"
	"net/http"

	_ "banco-api/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/traceid"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const (
	healthPath         = "/health"
	defaultMetricsPath = "/metrics"
)

// SetupRouter wires the customer routes and the host endpoints. A nil
// limiter disables rate limiting.
func SetupRouter(customerService customer.CustomerService, limiter mw.Limiter, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()

	setupMiddleware(router, limiter, cfg, logger)
	router.NotFound(handler.NotFound)
	router.MethodNotAllowed(handler.MethodNotAllowed)

	setupMetricsEndpoint(router, cfg, logger)
	setupCustomerRoutes(router, cfg, customerService, logger)
	router.Get(healthPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	setupSwaggerEndpoint(router, logger)

	return router
}

func setupMiddleware(router *chi.Mux, limiter mw.Limiter, cfg *config.Config, logger *slog.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(traceid.Middleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"Location"},
		MaxAge:         300,
	}))
	router.Use(mw.StructuredLogger(logger, healthPath, metricsPath(cfg)))
	router.Use(mw.Recoverer(logger))
	router.Use(middleware.Compress(5))
	router.Use(mw.NewRateLimiterMiddleware(cfg.Server.RateLimit, limiter, logger).Middleware)
	router.Use(mw.MetricsMiddleware())
}

func metricsPath(cfg *config.Config) string {
	if cfg.Metrics.Path == "" {
		return defaultMetricsPath
	}
	return cfg.Metrics.Path
}

func setupMetricsEndpoint(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	path := metricsPath(cfg)
	logger.Info("Setting up Prometheus metrics endpoint", "path", path)
	router.Handle(path, promhttp.Handler())
}

func setupSwaggerEndpoint(router *chi.Mux, logger *slog.Logger) {
	logger.Info("Setting up Swagger UI endpoint", "path", "/swagger/")
	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
}

func setupCustomerRoutes(r chi.Router, cfg *config.Config, svc customer.CustomerService, logger *slog.Logger) {
	h := handler.NewCustomerHandler(svc, logger)

	r.Route("/clientes", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.Server.Auth, logger))
		r.Post("/", h.CreateCustomer)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetCustomer)
			r.Put("/", h.UpdateCustomer)
			r.Delete("/", h.DeleteCustomer)
		})
	})
}

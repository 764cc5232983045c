package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"

	"odr-lab/platform/internal/api"
	"odr-lab/platform/internal/logging"
	"odr-lab/platform/internal/middleware"
)

// RegisterRoutes builds the chi router for the whole API.
func RegisterRoutes(deps *api.Dependencies, sqlxDB *sqlx.DB, jwtSecret string, upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(sqlxDB, upSince))

	RegisterAPIRoutes(r, deps, jwtSecret, middleware.NewRateLimiter(1, 5))

	return r
}

package api

import (
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"odr-lab/platform/internal/models/dtos/responses"
)

// HealthCheckHandler handles GET /healthCheck
//
// @Summary Health check
// @Description Reports database connectivity and process uptime.
// @Tags Misc
// @Success 200 {object} responses.HealthStatus
// @Router /healthCheck [get]
func HealthCheckHandler(db *sqlx.DB, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dbStatus := "ok"
		healthy := true
		if err := db.Ping(); err != nil {
			dbStatus = err.Error()
			healthy = false
		}

		status := responses.HealthStatus{
			Healthy:  healthy,
			Database: dbStatus,
			Uptime:   time.Since(upSince).Round(time.Second).String(),
		}

		code := http.StatusOK
		if !healthy {
			code = http.StatusServiceUnavailable
		}
		respondWithSuccess(w, code, &status)
	}
}

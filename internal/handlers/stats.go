package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/site-content-api/internal/logger"
	"github.com/sbilibin2017/site-content-api/internal/models"
	"github.com/sbilibin2017/site-content-api/internal/respond"
)

//go:generate mockgen -source=stats.go -destination=stats_mock.go -package=handlers

// StatsReader returns dashboard counters.
type StatsReader interface {
	Get(ctx context.Context) (*models.Stats, error)
}

// Pinger checks that the store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewStatsHandler returns an HTTP handler for the admin dashboard counters.
// @Summary Dashboard statistics
// @Description Active collection sizes and message counts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Stats
// @Failure 401 {object} respond.ErrorResponse "Missing or invalid token"
// @Router /api/stats [get]
func NewStatsHandler(reader StatsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := reader.Get(r.Context())
		if err != nil {
			respond.Internal(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, stats)
	}
}

// HealthResponse is the body of a successful health check
// swagger:model HealthResponse
type HealthResponse struct {
	// example: ok
	Status string `json:"status"`
}

// NewHealthHandler returns an HTTP handler reporting whether the store answers.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 503 {object} respond.ErrorResponse "Service unavailable"
// @Router /health [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.Log.Warnw("health check failed", "error", err)
			respond.Error(w, http.StatusServiceUnavailable, "Service unavailable")
			return
		}

		respond.JSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/ExpTable_Go/internal/database"
	"github.com/osse101/ExpTable_Go/internal/logger"
)

// readinessTimeout bounds the storage ping
const readinessTimeout = 2 * time.Second

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Storage string `json:"storage,omitempty"`
	Catalog string `json:"catalog,omitempty"`
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz reports ready once the catalogue is loaded and, for database
// backends, the database answers a ping. pool is nil for the memory backend.
// @Summary Readiness check
// @Description Returns OK if the service is ready to accept traffic
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(pool database.Pool, backend string, catalogVersion func() string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{Status: "ok", Storage: backend, Catalog: catalogVersion()}

		if pool != nil {
			ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
			defer cancel()

			if err := pool.Ping(ctx); err != nil {
				logger.FromContext(r.Context()).Error(LogMsgReadinessFailed, "error", err)
				resp.Status = "unavailable"
				resp.Message = "database connection failed"
				respondJSON(w, http.StatusServiceUnavailable, resp)
				return
			}
		}

		respondJSON(w, http.StatusOK, resp)
	}
}

package handler

import (
	"context"
	"net/http"
	"time"
)

// CorePinger reports whether the backing Core endpoint answers at all. The
// simulator has no remote dependency and passes a nil pinger.
type CorePinger interface {
	Healthcheck(ctx context.Context) error
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	core CorePinger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(core CorePinger) *HealthHandler {
	return &HealthHandler{core: core}
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 if the service is ready to accept traffic. With a
// remote Core configured, readiness includes reaching it.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.core == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready", "core": "simulated"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.core.Healthcheck(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"core":   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ready", "core": "ok"})
}

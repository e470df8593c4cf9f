package api

import (
	"context"
	"log/slog"
	"net/http"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type SystemHandler struct {
	db Pinger
}

// NewSystemHandler requires a non-nil db; /health always pings it.
func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{db: db}
}

func (h *SystemHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		logger.Error("health ping", slog.Any("err", err))
		writeJSON(w, map[string]string{"status": "unavailable", "service": "trivia"}, http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, map[string]string{"status": "ok", "service": "trivia"}, http.StatusOK)
}

func (h *SystemHandler) VersionHandler(version, buildTime string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"version": version, "buildTime": buildTime}, http.StatusOK)
	}
}

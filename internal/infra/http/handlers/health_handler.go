package handlers

import (
	"net/http"
	"time"
)

type HealthHandler struct {
	Upstreams map[string]string
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

// NewHealthHandler recebe nome -> base URL de cada API de dados abertos.
func NewHealthHandler(upstreams map[string]string) *HealthHandler {
	return &HealthHandler{
		Upstreams: upstreams,
		StartTime: time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	// Sem base URL não tem como atender nada daquela casa
	status := "healthy"
	deps := make(map[string]string, len(h.Upstreams))
	for name, baseURL := range h.Upstreams {
		if baseURL == "" {
			deps[name] = "not configured"
			status = "degraded"
			continue
		}
		deps[name] = "configured: " + baseURL
	}

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	if status == "degraded" {
		writeJSON(w, http.StatusServiceUnavailable, response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

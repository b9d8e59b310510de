package handler

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"
)

// HealthCheck checks one dependency
type HealthCheck func(ctx context.Context) error

type dependencyStatus struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
	Latency string `json:"latency,omitempty"`
}

type healthResponse struct {
	Status       string             `json:"status"`
	Timestamp    string             `json:"timestamp"`
	Uptime       string             `json:"uptime"`
	Dependencies []dependencyStatus `json:"dependencies"`
}

type healthHandler struct {
	checks  map[string]HealthCheck
	started time.Time
	now     func() time.Time
}

// ServeHTTP reports 200 when every dependency answers and 503 otherwise
func (h *healthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	response := healthResponse{
		Status:       "healthy",
		Dependencies: make([]dependencyStatus, 0, len(names)),
	}
	for _, name := range names {
		start := time.Now()
		err := h.checks[name](ctx)

		dep := dependencyStatus{Name: name, Status: "healthy", Latency: time.Since(start).String()}
		if err != nil {
			dep.Status = "unhealthy"
			dep.Error = err.Error()
			response.Status = "unhealthy"
		}
		response.Dependencies = append(response.Dependencies, dep)
	}

	now := h.now()
	response.Timestamp = now.UTC().Format(time.RFC3339)
	response.Uptime = fmt.Sprintf("%.0fs", now.Sub(h.started).Seconds())

	status := http.StatusOK
	if response.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, response)
}

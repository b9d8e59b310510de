package handler

import (
	"net/http"
	"time"

	"github.com/Ag1rin/TazeinDecor-sub002/services/calendar-service/internal/service"
	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/logger"
	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/metrics"
)

// Dependencies are everything the HTTP layer needs
type Dependencies struct {
	Calendar      *service.Calendar
	Installations *service.InstallationService
	Metrics       *metrics.Metrics
	Logger        *logger.Logger
	HealthChecks  map[string]HealthCheck
	Clock         func() time.Time
}

// NewRouter registers every route and wraps the mux in the middleware chain:
// CORS, request logging, then metrics.
func NewRouter(deps Dependencies) http.Handler {
	now := deps.Clock
	if now == nil {
		now = time.Now
	}

	calendar := NewCalendarHandler(deps.Calendar, deps.Logger, now)
	installations := NewInstallationHandler(deps.Installations, deps.Calendar, deps.Logger, now)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/calendar/today", calendar.Today)
	mux.HandleFunc("GET /api/calendar/convert", calendar.Convert)
	mux.HandleFunc("GET /api/calendar/month", calendar.Month)

	mux.HandleFunc("POST /api/installations", installations.Create)
	mux.HandleFunc("GET /api/installations", installations.List)
	mux.HandleFunc("GET /api/installations/tomorrow", installations.Tomorrow)
	mux.HandleFunc("GET /api/installations/month", installations.Month)
	mux.HandleFunc("GET /api/installations/{id}", installations.Get)
	mux.HandleFunc("PUT /api/installations/{id}", installations.Update)
	mux.HandleFunc("DELETE /api/installations/{id}", installations.Delete)

	health := &healthHandler{checks: deps.HealthChecks, started: now(), now: now}
	mux.Handle("GET /health", health)
	mux.Handle("GET /api/health", health)
	mux.Handle("GET /metrics", deps.Metrics.Handler())

	return CORSMiddleware(logger.Middleware(deps.Logger)(deps.Metrics.Middleware(mux)))
}

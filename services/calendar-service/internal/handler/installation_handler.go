package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Ag1rin/TazeinDecor-sub002/services/calendar-service/internal/service"
	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/helpers"
	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/logger"
)

type InstallationHandler struct {
	service  *service.InstallationService
	calendar *service.Calendar
	log      *logger.Logger
	now      func() time.Time
}

func NewInstallationHandler(svc *service.InstallationService, calendar *service.Calendar, log *logger.Logger, now func() time.Time) *InstallationHandler {
	return &InstallationHandler{service: svc, calendar: calendar, log: log, now: now}
}

// Create handles POST /api/installations
func (h *InstallationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.service.Schedule(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusCreated, view)
}

// List handles GET /api/installations
// Query params: from, to (inclusive Jalali dates)
func (h *InstallationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	list, err := h.service.List(r.Context(), q.Get("from"), q.Get("to"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, list)
}

// Tomorrow handles GET /api/installations/tomorrow
func (h *InstallationHandler) Tomorrow(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Tomorrow(r.Context(), h.now())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, view)
}

// Month handles GET /api/installations/month
// Query params: year, month (default to the current Jalali month)
func (h *InstallationHandler) Month(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonth(r, h.calendar, h.now())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	view, err := h.service.Month(r.Context(), year, month)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, view)
}

// Get handles GET /api/installations/{id}
func (h *InstallationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	view, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, view)
}

// Update handles PUT /api/installations/{id}
func (h *InstallationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var slot service.Slot
	if err := json.NewDecoder(r.Body).Decode(&slot); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.service.Reschedule(r.Context(), id, slot)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, view)
}

// Delete handles DELETE /api/installations/{id}
func (h *InstallationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Cancel(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *InstallationHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := helpers.ParseInt64(r.PathValue("id"))
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid installation id")
		return 0, false
	}
	return id, true
}

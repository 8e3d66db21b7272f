package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"bike-dashboard/models"
	"bike-dashboard/util"
	"bike-dashboard/util/log"
)

// Dashboard is what the handlers need from the dashboard service.
type Dashboard interface {
	Defaults() models.FilterCriteria
	Render(c models.FilterCriteria) (*models.DashboardView, error)
}

type DashboardHandler struct {
	dashboard Dashboard
}

func NewDashboardHandler(dashboard Dashboard) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GetDashboard handles GET /v1/dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	view, ok := h.render(w, r)
	if !ok {
		return // error already written
	}
	writeJSON(w, http.StatusOK, view)
}

// GetOptions handles GET /v1/dashboard/options
func (h *DashboardHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.dashboard.Defaults())
}

// GetDashboardPage handles GET /dashboard and returns the charts as HTML
func (h *DashboardHandler) GetDashboardPage(w http.ResponseWriter, r *http.Request) {
	view, ok := h.render(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := util.RenderDashboard(&buf, view); err != nil {
		log.Errorf("[DashboardHandler] Error rendering dashboard page: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Warnf("[DashboardHandler] Error writing dashboard page: %v", err)
	}
}

// Ping handles GET /ping
func (h *DashboardHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func (h *DashboardHandler) render(w http.ResponseWriter, r *http.Request) (*models.DashboardView, bool) {
	criteria, err := models.FilterCriteriaFromValues(r.URL.Query(), h.dashboard.Defaults())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	view, err := h.dashboard.Render(criteria)
	if err != nil {
		log.Errorf("[DashboardHandler] Error rendering dashboard view: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return nil, false
	}
	return view, true
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Warnf("[DashboardHandler] Error encoding response: %v", err)
	}
}

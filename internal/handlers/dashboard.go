package handlers

import (
	"net/http"

	"github.com/propdesk/propdesk/internal/api"
)

// DashboardHandler serves the console overview figures
type DashboardHandler struct {
	client *api.Client
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(client *api.Client) *DashboardHandler {
	return &DashboardHandler{client: client}
}

// Stats handles GET /dashboard
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := api.BuildDashboardStats(r.Context(), h.client)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

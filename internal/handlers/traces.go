package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/propdesk/propdesk/internal/api"
	"github.com/propdesk/propdesk/internal/models"
)

// TraceHandler proxies sale-trace requests to the remote API
type TraceHandler struct {
	traces *api.TracesService
}

// NewTraceHandler creates a new trace handler
func NewTraceHandler(traces *api.TracesService) *TraceHandler {
	return &TraceHandler{traces: traces}
}

// RegisterRoutes registers trace routes on the given router.
// The router should already have the /traces prefix.
func (h *TraceHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("", h.Create).Methods("POST")
	r.HandleFunc("/property/{propertyId}", h.ByProperty).Methods("GET")
}

// ByProperty returns the sale traces recorded for a property
func (h *TraceHandler) ByProperty(w http.ResponseWriter, r *http.Request) {
	traces, err := h.traces.ByProperty(r.Context(), mux.Vars(r)["propertyId"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, traces)
}

// Create records a new sale trace
func (h *TraceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreatePropertyTrace
	if err := decodeBody(r, &in); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	trace, err := h.traces.Create(r.Context(), in)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, trace)
}

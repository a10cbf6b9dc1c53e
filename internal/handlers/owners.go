package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/propdesk/propdesk/internal/api"
	"github.com/propdesk/propdesk/internal/models"
)

// OwnerHandler proxies owner requests to the remote API
type OwnerHandler struct {
	owners *api.OwnersService
}

// NewOwnerHandler creates a new owner handler
func NewOwnerHandler(owners *api.OwnersService) *OwnerHandler {
	return &OwnerHandler{owners: owners}
}

// RegisterRoutes registers owner routes on the given router.
// The router should already have the /owners prefix.
func (h *OwnerHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("", h.List).Methods("GET")
	r.HandleFunc("", h.Create).Methods("POST")
	r.HandleFunc("/{id}", h.Get).Methods("GET")
	r.HandleFunc("/{id}", h.Update).Methods("PUT")
	r.HandleFunc("/{id}", h.Delete).Methods("DELETE")
	r.HandleFunc("/{id}/properties", h.GetWithProperties).Methods("GET")
}

// List returns all owners, optionally filtered by ?name=
func (h *OwnerHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		owners []models.Owner
		err    error
	)
	if name := r.URL.Query().Get("name"); name != "" {
		owners, err = h.owners.FilterByName(r.Context(), name)
	} else {
		owners, err = h.owners.List(r.Context())
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, owners)
}

// Get returns a single owner
func (h *OwnerHandler) Get(w http.ResponseWriter, r *http.Request) {
	owner, err := h.owners.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, owner)
}

// GetWithProperties returns an owner with their properties embedded
func (h *OwnerHandler) GetWithProperties(w http.ResponseWriter, r *http.Request) {
	owner, err := h.owners.GetWithProperties(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, owner)
}

// Create registers a new owner
func (h *OwnerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreateOwner
	if err := decodeBody(r, &in); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	owner, err := h.owners.Create(r.Context(), in)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, owner)
}

// Update replaces an owner record
func (h *OwnerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateOwner
	if err := decodeBody(r, &in); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	owner, err := h.owners.Update(r.Context(), mux.Vars(r)["id"], in)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, owner)
}

// Delete removes an owner
func (h *OwnerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.owners.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

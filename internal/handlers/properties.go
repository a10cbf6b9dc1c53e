package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/propdesk/propdesk/internal/api"
	"github.com/propdesk/propdesk/internal/models"
)

// PropertyHandler proxies property requests to the remote API
type PropertyHandler struct {
	properties *api.PropertiesService
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(properties *api.PropertiesService) *PropertyHandler {
	return &PropertyHandler{properties: properties}
}

// RegisterRoutes registers property routes on the given router.
// The router should already have the /properties prefix.
func (h *PropertyHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("", h.List).Methods("GET")
	r.HandleFunc("", h.Create).Methods("POST")
	r.HandleFunc("/owner/{ownerId}", h.ByOwner).Methods("GET")
	r.HandleFunc("/{id}", h.Get).Methods("GET")
	r.HandleFunc("/{id}", h.Update).Methods("PUT")
	r.HandleFunc("/{id}", h.Delete).Methods("DELETE")
}

// List returns properties matching the optional name/address/price filters
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := models.PropertyFilter{
		Name:    r.URL.Query().Get("name"),
		Address: r.URL.Query().Get("address"),
	}
	if v := r.URL.Query().Get("minPrice"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed < 0 {
			respondJSONError(w, http.StatusBadRequest, "Bad Request", "minPrice must be a non-negative number")
			return
		}
		filter.MinPrice = parsed
	}
	if v := r.URL.Query().Get("maxPrice"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed < 0 {
			respondJSONError(w, http.StatusBadRequest, "Bad Request", "maxPrice must be a non-negative number")
			return
		}
		filter.MaxPrice = parsed
	}

	var (
		properties []models.Property
		err        error
	)
	if filter == (models.PropertyFilter{}) {
		properties, err = h.properties.List(r.Context())
	} else {
		properties, err = h.properties.Filter(r.Context(), filter)
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, properties)
}

// Get returns a single property
func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	property, err := h.properties.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, property)
}

// ByOwner returns all properties belonging to an owner
func (h *PropertyHandler) ByOwner(w http.ResponseWriter, r *http.Request) {
	properties, err := h.properties.ByOwner(r.Context(), mux.Vars(r)["ownerId"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, properties)
}

// Create registers a new property
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreateProperty
	if err := decodeBody(r, &in); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	property, err := h.properties.Create(r.Context(), in)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, property)
}

// Update replaces a property record
func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateProperty
	if err := decodeBody(r, &in); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	property, err := h.properties.Update(r.Context(), mux.Vars(r)["id"], in)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, property)
}

// Delete removes a property
func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.properties.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

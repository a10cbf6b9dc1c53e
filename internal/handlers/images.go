package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/propdesk/propdesk/internal/api"
	"github.com/propdesk/propdesk/internal/models"
)

// ImageHandler proxies property-image requests to the remote API
type ImageHandler struct {
	images *api.ImagesService
}

// NewImageHandler creates a new image handler
func NewImageHandler(images *api.ImagesService) *ImageHandler {
	return &ImageHandler{images: images}
}

// RegisterRoutes registers image routes on the given router.
// The router should already have the /images prefix.
func (h *ImageHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("", h.Create).Methods("POST")
	r.HandleFunc("/property/{propertyId}", h.ByProperty).Methods("GET")
	r.HandleFunc("/{id}", h.Delete).Methods("DELETE")
}

// ByProperty returns the images attached to a property
func (h *ImageHandler) ByProperty(w http.ResponseWriter, r *http.Request) {
	images, err := h.images.ByProperty(r.Context(), mux.Vars(r)["propertyId"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, images)
}

// Create attaches an image to a property
func (h *ImageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreatePropertyImage
	if err := decodeBody(r, &in); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	image, err := h.images.Create(r.Context(), in)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, image)
}

// Delete removes an image
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.images.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

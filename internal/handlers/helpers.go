package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/propdesk/propdesk/internal/api"
	"github.com/propdesk/propdesk/internal/auth"
	"github.com/propdesk/propdesk/internal/validation"
)

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]any{
		"success":   true,
		"data":      data,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// respondJSONError sends an error JSON response
func respondJSONError(w http.ResponseWriter, status int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if len(message) > 200 {
		message = message[:200] + "..."
	}

	response := map[string]any{
		"success":   false,
		"error":     errorType,
		"message":   message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// respondServiceError maps upstream and validation failures onto gateway
// responses: remote API statuses pass through, form errors become 400,
// anything else is a 502 since the gateway itself holds no data.
func respondServiceError(w http.ResponseWriter, err error) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		respondJSONError(w, apiErr.StatusCode, http.StatusText(apiErr.StatusCode), apiErr.Message)
		return
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", validation.Describe(err))
		return
	}
	var authErr *auth.Error
	if errors.As(err, &authErr) {
		status := http.StatusUnauthorized
		if authErr.StatusCode == 0 {
			status = http.StatusBadGateway
		}
		respondJSONError(w, status, http.StatusText(status), authErr.Message)
		return
	}
	respondJSONError(w, http.StatusBadGateway, "Bad Gateway", "upstream API unavailable")
}

// decodeBody parses a JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

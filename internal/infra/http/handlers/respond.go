package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"leaddesk/internal/usecase"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps the service error taxonomy onto the HTTP
// contract: validation → 400, not found → 404, anything else → 500.
func respondServiceError(w http.ResponseWriter, err error, notFoundMessage string) {
	var ve usecase.ValidationErrors
	switch {
	case errors.As(err, &ve):
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "Validation failed",
			"fields": []usecase.ValidationError(ve),
		})
	case errors.Is(err, usecase.ErrNotFound):
		respondError(w, http.StatusNotFound, notFoundMessage)
	default:
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

package controllers

import (
	"encoding/json"
	"net/http"

	"forum/app/services"
)

// errorResponse is the JSON error body. Details carry the underlying cause
// and are only populated outside production deployments.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendError maps a service error onto a status code and a stable message.
// Validation messages are written as-is; storage failures are reduced to
// the fallback message so internal error text never reaches production
// clients.
func sendError(w http.ResponseWriter, err error, fallback string, exposeDetails bool) {
	status := http.StatusInternalServerError
	message := fallback

	switch {
	case services.IsValidation(err):
		status = http.StatusBadRequest
		message = err.Error()
	case services.IsNotFound(err):
		status = http.StatusNotFound
		message = "post not found"
	}

	body := errorResponse{Error: message}
	if exposeDetails && status == http.StatusInternalServerError {
		body.Details = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func sendBadRequest(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(errorResponse{Error: message})
}

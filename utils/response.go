package utils

import (
	"encoding/json"
	"net/http"

	"quickcart/models"
)

type M map[string]any

// Envelope is the standard response shape for every endpoint.
type Envelope struct {
	Success    bool               `json:"success"`
	Data       any                `json:"data,omitempty"`
	Error      string             `json:"error,omitempty"`
	Message    string             `json:"message,omitempty"`
	Details    []string           `json:"details,omitempty"`
	Count      *int               `json:"count,omitempty"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
	RetryAfter int                `json:"retryAfter,omitempty"`
}

// Sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func SendData(w http.ResponseWriter, status int, data any, message string) {
	RespondWithJSON(w, status, Envelope{Success: true, Data: data, Message: message})
}

func SendPage(w http.ResponseWriter, data any, p models.Pagination, message string) {
	RespondWithJSON(w, http.StatusOK, Envelope{
		Success:    true,
		Data:       data,
		Pagination: &p,
		Message:    message,
	})
}

func SendCount(w http.ResponseWriter, data any, count int, message string) {
	RespondWithJSON(w, http.StatusOK, Envelope{
		Success: true,
		Data:    data,
		Count:   &count,
		Message: message,
	})
}

func SendError(w http.ResponseWriter, status int, errMsg, message string) {
	RespondWithJSON(w, status, Envelope{Success: false, Error: errMsg, Message: message})
}

// SendValidationError reports itemized request-shape failures.
func SendValidationError(w http.ResponseWriter, details []string) {
	RespondWithJSON(w, http.StatusBadRequest, Envelope{
		Success: false,
		Error:   "Validation failed",
		Message: "Please check the following errors",
		Details: details,
	})
}

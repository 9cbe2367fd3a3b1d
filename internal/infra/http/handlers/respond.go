package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dentalhub/leads-api/internal/usecase"
)

type errorResponse struct {
	Error  string                    `json:"error"`
	Fields []usecase.ValidationError `json:"fields,omitempty"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, successResponse{Success: true, Data: data})
}

// writeError maps the use-case error taxonomy onto HTTP statuses. Technical
// failures stay generic; detail lives in the logs, not in the response.
func writeError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		if domainErr.Code == usecase.CodeNotFound {
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorResponse{Error: domainErr.Message, Fields: domainErr.Fields})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/flyfox-ai/funnel/internal/usecase"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *apiError `json:"error,omitempty"`
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiResponse{Success: true, Data: data})
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiResponse{Success: false, Error: &apiError{Code: code, Message: message}})
}

// writeUseCaseError maps domain error kinds onto HTTP statuses. Technical
// errors deliberately leak no detail.
func writeUseCaseError(w http.ResponseWriter, err error) {
	var de *usecase.DomainError
	if errors.As(err, &de) {
		status := http.StatusInternalServerError
		switch de.Code {
		case usecase.CodeValidation:
			status = http.StatusUnprocessableEntity
		case usecase.CodeConflict:
			status = http.StatusConflict
		case usecase.CodeNotFound:
			status = http.StatusNotFound
		case usecase.CodeAuth:
			status = http.StatusUnauthorized
		}
		writeErrorResponse(w, status, de.Code, de.Message)
		return
	}
	writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

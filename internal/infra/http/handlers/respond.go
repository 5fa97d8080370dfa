package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/leadcentral/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

// writeUsecaseError maps the outcome taxonomy onto HTTP statuses. Anything
// that is not a DomainError is a 500.
func writeUsecaseError(w http.ResponseWriter, err error) {
	if domainErr, ok := err.(*usecase.DomainError); ok {
		status := http.StatusInternalServerError
		switch domainErr.Code {
		case usecase.CodeNotFound:
			status = http.StatusNotFound
		case usecase.CodeForbidden:
			status = http.StatusForbidden
		case usecase.CodeValidation:
			status = http.StatusBadRequest
		case usecase.CodeConflict:
			status = http.StatusConflict
		case usecase.CodeUnauthorized:
			status = http.StatusUnauthorized
		}
		writeErrorResponse(w, status, domainErr.Code, domainErr.Message)
		return
	}

	writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Une erreur interne est survenue")
}

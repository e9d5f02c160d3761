// Package handlers provides JSON response and error mapping helpers.
package handlers

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/inkwell-notes/backend/internal/errors"
	"github.com/inkwell-notes/backend/internal/logging"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]errorBody{
		"error": {Code: codeForStatus(status), Message: message},
	})
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return string(apperrors.ErrInvalid)
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusNotFound:
		return string(apperrors.ErrNotFound)
	default:
		return string(apperrors.ErrInternal)
	}
}

// writeError maps the error taxonomy onto HTTP statuses. Store failures
// surface as 500s and are logged; they are never retried or masked here.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.CodeOf(err)

	var status int
	switch code {
	case apperrors.ErrNoteNotFound, apperrors.ErrNotFound:
		status = http.StatusNotFound
	case apperrors.ErrValidation, apperrors.ErrNoteInvalid:
		status = http.StatusUnprocessableEntity
	case apperrors.ErrInvalid:
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	if status == http.StatusInternalServerError {
		logging.Error("request failed", err, logging.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		})
	}

	message := err.Error()
	if appErr, ok := err.(*apperrors.AppError); ok {
		message = appErr.Message
	}
	writeJSON(w, status, map[string]errorBody{
		"error": {Code: string(code), Message: message},
	})
}

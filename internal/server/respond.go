package server

import (
	"encoding/json"
	"net/http"
)

// apiError is an HTTP-facing error with a status code and a safe message.
// The wrapped error is for logs only and never serialized.
type apiError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
	err     error
}

func badRequest(message string, err error) *apiError {
	if err != nil {
		message = message + ": " + err.Error()
	}
	return &apiError{Status: http.StatusBadRequest, Message: message, err: err}
}

func serverError(message string, err error) *apiError {
	return &apiError{Status: http.StatusInternalServerError, Message: message, err: err}
}

func methodNotAllowed() *apiError {
	return &apiError{Status: http.StatusMethodNotAllowed, Message: "method not allowed"}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeErr(w http.ResponseWriter, e *apiError) {
	writeJSON(w, e.Status, e)
}

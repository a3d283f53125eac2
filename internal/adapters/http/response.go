// Package http
package http

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope for non-entity bodies: messages and validation
// errors. Entity bodies (clientes, logradouros, token) are written raw.
type Response struct {
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, &Response{Message: msg})
}

func writeValidationErrors(w http.ResponseWriter, errs map[string]string) {
	writeJSON(w, http.StatusBadRequest, &Response{Errors: errs})
}

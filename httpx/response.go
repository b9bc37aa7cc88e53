// Package httpx holds the JSON envelope shared by every API handler.
package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// MaxBodyBytes bounds a decoded request body.
const MaxBodyBytes = 1 << 20

type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// JSON writes payload with status. Nothing is written when payload cannot be
// encoded, except a generic 500.
func JSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"encode_error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// JSONError writes the {"error": code, "details": ...} envelope.
func JSONError(w http.ResponseWriter, status int, code string, details any) {
	JSON(w, status, ErrorResponse{Error: code, Details: details})
}

// Decode reads one JSON value from r's body into dst.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("body must hold a single JSON value")
	}
	return nil
}

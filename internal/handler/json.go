package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/boisserenc/atelier/internal/domain"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 64 << 10

// writeJSON sends a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		LoggerFromContext(r.Context()).Error("write JSON response", "error", err)
	}
}

// writeError sends {"message": message} with the given status code.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, map[string]string{"message": message})
}

// readJSON decodes a size-limited request body into dst. Any decoding
// failure is reported as a *domain.InputError.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.NewInputError("Validation error: request body exceeds %d bytes", tooLarge.Limit)
		}
		return domain.NewInputError("Validation error: invalid JSON body")
	}
	return nil
}

// inputMessage returns the caller-safe message of an input error.
func inputMessage(err error, fallback string) string {
	var inputErr *domain.InputError
	if errors.As(err, &inputErr) {
		return inputErr.Message
	}
	return fallback
}

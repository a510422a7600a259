// Package render writes the JSON envelope shared by every endpoint and
// maps domain errors to HTTP status codes.
package render

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/chris/check-ledger/pkg/api"
	"github.com/chris/check-ledger/pkg/ledger"
)

// JSON writes a success envelope carrying data.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(api.Response{Success: true, Data: data}); err != nil {
		log.Printf("ERROR: failed to write response: %v", err)
	}
}

// Message writes a success envelope carrying only a message.
func Message(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(api.Response{Success: true, Message: message}); err != nil {
		log.Printf("ERROR: failed to write response: %v", err)
	}
}

// Error maps a domain error to its status code and writes the failure
// envelope. Unrecognized errors are logged and surface as a plain 500.
func Error(w http.ResponseWriter, err error) {
	var validation *ledger.ValidationError
	var conflict *ledger.StateConflictError

	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.As(err, &validation):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, ledger.ErrDuplicateCheckNumber):
		status = http.StatusBadRequest
		message = "check number already exists"
	case errors.Is(err, ledger.ErrNoActiveCheckBook):
		status = http.StatusBadRequest
		message = "no active check book"
	case errors.Is(err, ledger.ErrCheckBookExhausted):
		status = http.StatusConflict
		message = "active check book has too few numbers left"
	case errors.Is(err, ledger.ErrNotFound):
		status = http.StatusNotFound
		message = "not found"
	case errors.As(err, &conflict):
		status = http.StatusConflict
		message = err.Error()
	default:
		log.Printf("ERROR: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(api.ErrorResponse{Success: false, Error: message}); encodeErr != nil {
		log.Printf("ERROR: failed to write error response: %v", encodeErr)
	}
}

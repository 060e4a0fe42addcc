// Package httpx holds the JSON respond/bind helpers used by every handler.
package httpx

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/shoplite/shoplite-backend/internal/apperr"
)

// ErrorBody is the JSON shape of every non-2xx response.
type ErrorBody struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

// Respond writes body as JSON with the given status.
func Respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		json.NewEncoder(w).Encode(body)
	}
}

// Decode binds the request body into v.
func Decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Validationf("invalid request body: %v", err)
	}
	return nil
}

// RespondError maps a typed error to its HTTP status and writes the error
// body. Unknown errors are logged with a correlation id and reported as a
// bare 500 so internal detail never reaches the client.
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	var ae *apperr.Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case apperr.KindValidation:
			status = http.StatusBadRequest
		case apperr.KindUnauthorized:
			status = http.StatusUnauthorized
		case apperr.KindForbidden:
			status = http.StatusForbidden
		case apperr.KindNotFound:
			status = http.StatusNotFound
		case apperr.KindConflict, apperr.KindInsufficientStock:
			status = http.StatusConflict
		}
		message = ae.Message
	}

	if status == http.StatusInternalServerError {
		id := uuid.NewString()
		log.Printf("internal error [%s] %s %s: %v", id, r.Method, r.URL.Path, err)
		message = "internal server error (ref " + id + ")"
	}

	Respond(w, status, ErrorBody{
		Status:  status,
		Error:   http.StatusText(status),
		Message: message,
		Path:    r.URL.Path,
	})
}

// Package httperr maps the shared error taxonomy to HTTP status codes so
// every handler package answers the same way.
package httperr

import (
	"errors"
	"net/http"

	"github.com/mbakke/torget/internal/apperr"
)

func Write(w http.ResponseWriter, err error) {
	switch {
	case apperr.IsValidation(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, apperr.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, apperr.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, apperr.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, apperr.ErrInvalidState):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, apperr.ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

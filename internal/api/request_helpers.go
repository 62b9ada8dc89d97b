package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/newsroom-dev/newsroom-api/internal/domain"
)

// getPathInt extracts an integer from the URL path parameters.
// A missing or non-numeric segment yields a validation error wrapping
// domain.ErrInvalidID, which maps to 400 — the store is never touched
// with a malformed identifier.
func getPathInt(r *http.Request, paramName string) (int, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.Atoi(pathParam)
	if err != nil {
		return 0, domain.NewValidationError(paramName, "must be a number", domain.ErrInvalidID)
	}

	return id, nil
}

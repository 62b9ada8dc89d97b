package api

import (
	"errors"
	"net/http"

	"github.com/newsroom-dev/newsroom-api/internal/api/shared"
	"github.com/newsroom-dev/newsroom-api/internal/domain"
	"github.com/newsroom-dev/newsroom-api/internal/store"
)

// NotFoundMessage is the fixed body message for unmatched routes.
const NotFoundMessage = "404 Not Found"

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, store.ErrArticleNotFound),
		errors.Is(err, store.ErrCommentNotFound),
		errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrTopicNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyCommentAuthor),
		errors.Is(err, domain.ErrEmptyCommentBody),
		errors.Is(err, store.ErrInvalidQuery),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "Internal Server Error"
	}

	switch {
	// Not found errors. ErrUserNotFound is raised by the comment
	// insert's author foreign key, hence the username wording.
	case errors.Is(err, store.ErrArticleNotFound):
		return "Article Not Found"

	case errors.Is(err, store.ErrCommentNotFound):
		return "Comment Not Found"

	case errors.Is(err, store.ErrUserNotFound):
		return "Username does not exist"

	case errors.Is(err, store.ErrTopicNotFound):
		return "Topic Not Found"

	case errors.Is(err, store.ErrNotFound):
		return NotFoundMessage

	// Bad request errors with product-specified wording
	case errors.Is(err, domain.ErrEmptyCommentAuthor):
		return "Please enter a valid username"

	case errors.Is(err, domain.ErrEmptyCommentBody):
		return "Please enter a valid comment"

	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidQuery),
		errors.Is(err, store.ErrInvalidEntity):
		return "Bad Request"

	default:
		return "Internal Server Error"
	}
}

// HandleAPIError resolves an error forwarded by a handler into an HTTP
// response: status from MapErrorToStatusCode, body from
// GetSafeErrorMessage (or fallbackMessage when non-empty and the error
// is unrecognized), full error redacted into the logs.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	status := MapErrorToStatusCode(err)

	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallbackMessage != "" {
		message = fallbackMessage
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

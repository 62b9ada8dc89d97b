package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in
	// the store. This is a generic version of the entity-specific not
	// found errors (e.g., ErrArticleNotFound, ErrCommentNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidEntity is returned when data is rejected by the store
	// before or during a write, for example a value the database cannot
	// interpret ("invalid input syntax"). Check the wrapped error for
	// specific details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrInvalidQuery is returned when listing parameters fail
	// allow-list validation (sort key or sort order).
	ErrInvalidQuery = errors.New("invalid query")

	// Entity-specific "not found" errors

	// ErrTopicNotFound indicates that the requested topic does not exist in the store.
	ErrTopicNotFound = fmt.Errorf("%w: topic", ErrNotFound)

	// ErrArticleNotFound indicates that the requested article does not exist in the store.
	ErrArticleNotFound = fmt.Errorf("%w: article", ErrNotFound)

	// ErrCommentNotFound indicates that the requested comment does not exist in the store.
	ErrCommentNotFound = fmt.Errorf("%w: comment", ErrNotFound)

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	// Also returned when a comment insert violates the author foreign key,
	// i.e. the username does not reference a known user.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// This includes the generic ErrNotFound and all entity-specific not found errors.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "article", "comment")
	Operation string // The operation that failed (e.g., "create", "delete")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

package store

import (
	"context"

	"github.com/newsroom-dev/newsroom-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
// Users are read-only through this API.
type UserStore interface {
	// List retrieves all users in username order.
	// Returns an empty slice when no users exist.
	List(ctx context.Context) ([]domain.User, error)
}

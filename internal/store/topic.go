package store

import (
	"context"

	"github.com/newsroom-dev/newsroom-api/internal/domain"
)

// TopicStore defines the interface for topic data persistence.
// Topics are read-only through this API.
type TopicStore interface {
	// List retrieves all topics in slug order.
	// Returns an empty slice when no topics exist.
	List(ctx context.Context) ([]domain.Topic, error)
}

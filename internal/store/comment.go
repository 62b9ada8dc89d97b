package store

import (
	"context"

	"github.com/newsroom-dev/newsroom-api/internal/domain"
)

// CommentStore defines the interface for comment data persistence.
type CommentStore interface {
	// ListByArticle retrieves all comments for the given article,
	// ordered by created_at descending.
	// Returns ErrArticleNotFound if the article does not exist.
	// Returns an empty slice if the article exists but has no comments.
	ListByArticle(ctx context.Context, articleID int) ([]domain.Comment, error)

	// Create inserts a new comment and returns the stored row with its
	// generated ID and timestamp. Referential integrity is enforced by
	// the insert itself rather than a separate existence check, so a
	// concurrent article deletion cannot slip between check and insert.
	// Returns ErrArticleNotFound if the article foreign key is violated.
	// Returns ErrUserNotFound if the author foreign key is violated.
	// Returns validation errors from the domain Comment if data is invalid.
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)

	// Delete removes a comment by its ID.
	// Returns ErrCommentNotFound if the comment does not exist.
	Delete(ctx context.Context, commentID int) error
}

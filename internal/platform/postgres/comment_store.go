package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/newsroom-dev/newsroom-api/internal/domain"
	"github.com/newsroom-dev/newsroom-api/internal/platform/logger"
	"github.com/newsroom-dev/newsroom-api/internal/store"
)

// Foreign key constraint names on the comments table. The migration
// declares these explicitly; Create relies on them to tell an unknown
// article apart from an unknown author.
const (
	commentArticleFKConstraint = "comments_article_id_fkey"
	commentAuthorFKConstraint  = "comments_author_fkey"
)

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the
// CommentStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

// Ensure PostgresCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*PostgresCommentStore)(nil)

// ListByArticle implements store.CommentStore.ListByArticle
// Returns store.ErrArticleNotFound if the article does not exist, and an
// empty slice if the article exists but has no comments. The two cases
// must stay distinguishable for the handler.
func (s *PostgresCommentStore) ListByArticle(
	ctx context.Context,
	articleID int,
) ([]domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var exists bool
	existsQuery := `SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1)`
	if err := s.db.QueryRowContext(ctx, existsQuery, articleID).Scan(&exists); err != nil {
		log.Error("failed to check article existence",
			slog.String("error", err.Error()),
			slog.Int("article_id", articleID))
		return nil, MapError(err)
	}
	if !exists {
		log.Debug("article not found for comment listing", slog.Int("article_id", articleID))
		return nil, store.ErrArticleNotFound
	}

	query := `
		SELECT comment_id, body, article_id, author, votes, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, articleID)
	if err != nil {
		log.Error("failed to query comments",
			slog.String("error", err.Error()),
			slog.Int("article_id", articleID))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var comments []domain.Comment
	for rows.Next() {
		var comment domain.Comment
		err := rows.Scan(
			&comment.CommentID,
			&comment.Body,
			&comment.ArticleID,
			&comment.Author,
			&comment.Votes,
			&comment.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan comment row", slog.String("error", err.Error()))
			return nil, err
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if comments == nil {
		comments = []domain.Comment{}
	}

	log.Debug("listed comments",
		slog.Int("article_id", articleID),
		slog.Int("count", len(comments)))
	return comments, nil
}

// Create implements store.CommentStore.Create
// The insert's own foreign-key constraints are the source of truth for
// referential integrity; there is no separate existence check, so a
// concurrent article deletion cannot slip between check and insert.
func (s *PostgresCommentStore) Create(
	ctx context.Context,
	comment *domain.Comment,
) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := comment.Validate(); err != nil {
		log.Warn("comment validation failed during create",
			slog.String("error", err.Error()),
			slog.Int("article_id", comment.ArticleID))
		return nil, err
	}

	query := `
		INSERT INTO comments (body, article_id, author, votes, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING comment_id, body, article_id, author, votes, created_at
	`

	var created domain.Comment
	err := s.db.QueryRowContext(
		ctx,
		query,
		comment.Body,
		comment.ArticleID,
		comment.Author,
		comment.Votes,
		comment.CreatedAt,
	).Scan(
		&created.CommentID,
		&created.Body,
		&created.ArticleID,
		&created.Author,
		&created.Votes,
		&created.CreatedAt,
	)

	if err != nil {
		if constraint, ok := IsForeignKeyViolation(err); ok {
			switch constraint {
			case commentArticleFKConstraint:
				log.Debug("article not found for comment creation",
					slog.Int("article_id", comment.ArticleID))
				return nil, fmt.Errorf("%w: article %d does not exist",
					store.ErrArticleNotFound, comment.ArticleID)
			case commentAuthorFKConstraint:
				log.Debug("author not found for comment creation",
					slog.String("author", comment.Author))
				return nil, fmt.Errorf("%w: username %q does not exist",
					store.ErrUserNotFound, comment.Author)
			}
		}

		log.Error("failed to create comment",
			slog.String("error", err.Error()),
			slog.Int("article_id", comment.ArticleID),
			slog.String("author", comment.Author))
		return nil, MapError(err)
	}

	log.Info("comment created successfully",
		slog.Int("comment_id", created.CommentID),
		slog.Int("article_id", created.ArticleID),
		slog.String("author", created.Author))
	return &created, nil
}

// Delete implements store.CommentStore.Delete
// Returns store.ErrCommentNotFound if the comment does not exist.
func (s *PostgresCommentStore) Delete(ctx context.Context, commentID int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM comments WHERE comment_id = $1`

	result, err := s.db.ExecContext(ctx, query, commentID)
	if err != nil {
		log.Error("failed to delete comment",
			slog.String("error", err.Error()),
			slog.Int("comment_id", commentID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrCommentNotFound); err != nil {
		if errors.Is(err, store.ErrCommentNotFound) {
			log.Debug("comment not found for delete", slog.Int("comment_id", commentID))
		}
		return err
	}

	log.Info("comment deleted successfully", slog.Int("comment_id", commentID))
	return nil
}

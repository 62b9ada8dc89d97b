package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/newsroom-dev/newsroom-api/internal/domain"
	"github.com/newsroom-dev/newsroom-api/internal/platform/logger"
	"github.com/newsroom-dev/newsroom-api/internal/store"
)

// articleColumns is the shared select list for article queries,
// including the aggregated comment count.
const articleColumns = `
	a.article_id, a.title, a.topic, a.author, a.body,
	a.created_at, a.votes, a.article_img_url,
	COUNT(c.comment_id)::int AS comment_count
`

// PostgresArticleStore implements the store.ArticleStore interface
// using a PostgreSQL database as the storage backend.
type PostgresArticleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresArticleStore creates a new PostgreSQL implementation of the
// ArticleStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresArticleStore(db store.DBTX, logger *slog.Logger) *PostgresArticleStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresArticleStore{
		db:     db,
		logger: logger.With(slog.String("component", "article_store")),
	}
}

// Ensure PostgresArticleStore implements store.ArticleStore interface
var _ store.ArticleStore = (*PostgresArticleStore)(nil)

// GetByID implements store.ArticleStore.GetByID
// It retrieves an article by its unique ID with CommentCount aggregated.
// Returns store.ErrArticleNotFound if the article does not exist.
func (s *PostgresArticleStore) GetByID(ctx context.Context, id int) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(`
		SELECT %s
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id
		WHERE a.article_id = $1
		GROUP BY a.article_id
	`, articleColumns)

	var article domain.Article
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&article.ArticleID,
		&article.Title,
		&article.Topic,
		&article.Author,
		&article.Body,
		&article.CreatedAt,
		&article.Votes,
		&article.ArticleImgURL,
		&article.CommentCount,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("article not found", slog.Int("article_id", id))
			return nil, store.ErrArticleNotFound
		}
		log.Error("failed to get article by ID",
			slog.String("error", err.Error()),
			slog.Int("article_id", id))
		return nil, MapError(err)
	}

	log.Debug("article retrieved successfully", slog.Int("article_id", id))
	return &article, nil
}

// List implements store.ArticleStore.List
// Filtering, sorting, and the comment-count aggregation share this one
// query path. The sort identifiers come exclusively from the allow-list
// checked by query.Validate; nothing caller-supplied is interpolated.
func (s *PostgresArticleStore) List(
	ctx context.Context,
	query store.ArticleQuery,
) ([]domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := query.Validate(); err != nil {
		log.Warn("article query validation failed",
			slog.String("error", err.Error()),
			slog.String("sort_by", query.SortBy),
			slog.String("order", query.Order))
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`
		SELECT %s
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id
	`, articleColumns))

	var args []any
	if query.Topic != "" {
		sb.WriteString("WHERE a.topic = $1\n")
		args = append(args, query.Topic)
	}
	sb.WriteString("GROUP BY a.article_id\n")

	// comment_count orders by the aggregate alias; every other key is a
	// plain article column. Both identifiers passed validation above.
	sortExpr := "a." + query.SortBy
	if query.SortBy == "comment_count" {
		sortExpr = "comment_count"
	}
	sb.WriteString(fmt.Sprintf("ORDER BY %s %s", sortExpr, strings.ToUpper(query.Order)))

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		log.Error("failed to query articles",
			slog.String("error", err.Error()),
			slog.String("sort_by", query.SortBy),
			slog.String("order", query.Order),
			slog.String("topic", query.Topic))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var articles []domain.Article
	for rows.Next() {
		var article domain.Article
		err := rows.Scan(
			&article.ArticleID,
			&article.Title,
			&article.Topic,
			&article.Author,
			&article.Body,
			&article.CreatedAt,
			&article.Votes,
			&article.ArticleImgURL,
			&article.CommentCount,
		)
		if err != nil {
			log.Error("failed to scan article row", slog.String("error", err.Error()))
			return nil, err
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if articles == nil {
		articles = []domain.Article{}
	}

	log.Debug("listed articles",
		slog.Int("count", len(articles)),
		slog.String("sort_by", query.SortBy),
		slog.String("order", query.Order),
		slog.String("topic", query.Topic))
	return articles, nil
}

// IncrementVotes implements store.ArticleStore.IncrementVotes
// The increment is a single UPDATE expression evaluated by the database,
// so concurrent increments against the same article never lose updates.
// Returns store.ErrArticleNotFound if the article does not exist.
func (s *PostgresArticleStore) IncrementVotes(
	ctx context.Context,
	id, delta int,
) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE articles
		SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url
	`

	var article domain.Article
	err := s.db.QueryRowContext(ctx, query, delta, id).Scan(
		&article.ArticleID,
		&article.Title,
		&article.Topic,
		&article.Author,
		&article.Body,
		&article.CreatedAt,
		&article.Votes,
		&article.ArticleImgURL,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("article not found for vote increment", slog.Int("article_id", id))
			return nil, store.ErrArticleNotFound
		}
		log.Error("failed to increment article votes",
			slog.String("error", err.Error()),
			slog.Int("article_id", id),
			slog.Int("delta", delta))
		return nil, MapError(err)
	}

	// Re-aggregate the comment count so the updated article has the same
	// shape as every other article payload.
	countQuery := `SELECT COUNT(*)::int FROM comments WHERE article_id = $1`
	if err := s.db.QueryRowContext(ctx, countQuery, id).Scan(&article.CommentCount); err != nil {
		log.Error("failed to count comments after vote increment",
			slog.String("error", err.Error()),
			slog.Int("article_id", id))
		return nil, MapError(err)
	}

	log.Info("article votes incremented",
		slog.Int("article_id", id),
		slog.Int("delta", delta),
		slog.Int("votes", article.Votes))
	return &article, nil
}

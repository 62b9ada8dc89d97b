package postgres

import (
	"context"
	"log/slog"

	"github.com/newsroom-dev/newsroom-api/internal/domain"
	"github.com/newsroom-dev/newsroom-api/internal/platform/logger"
	"github.com/newsroom-dev/newsroom-api/internal/store"
)

// PostgresTopicStore implements the store.TopicStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTopicStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTopicStore creates a new PostgreSQL implementation of the
// TopicStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTopicStore(db store.DBTX, logger *slog.Logger) *PostgresTopicStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTopicStore{
		db:     db,
		logger: logger.With(slog.String("component", "topic_store")),
	}
}

// Ensure PostgresTopicStore implements store.TopicStore interface
var _ store.TopicStore = (*PostgresTopicStore)(nil)

// List implements store.TopicStore.List
func (s *PostgresTopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT slug, description
		FROM topics
		ORDER BY slug ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query topics", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var topics []domain.Topic
	for rows.Next() {
		var topic domain.Topic
		if err := rows.Scan(&topic.Slug, &topic.Description); err != nil {
			log.Error("failed to scan topic row", slog.String("error", err.Error()))
			return nil, err
		}
		topics = append(topics, topic)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	// Return empty slice instead of nil if no topics found
	if topics == nil {
		topics = []domain.Topic{}
	}

	log.Debug("listed topics", slog.Int("count", len(topics)))
	return topics, nil
}

package main

import (
	"database/sql"
	"log/slog"

	"github.com/newsroom-dev/newsroom-api/internal/config"
	"github.com/newsroom-dev/newsroom-api/internal/platform/postgres"
	"github.com/newsroom-dev/newsroom-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	topicStore   store.TopicStore
	articleStore store.ArticleStore
	commentStore store.CommentStore
	userStore    store.UserStore
}

// newApplication wires the application dependencies: postgres store
// implementations over the shared connection pool.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	return &application{
		config:       cfg,
		logger:       logger,
		db:           db,
		topicStore:   postgres.NewPostgresTopicStore(db, logger),
		articleStore: postgres.NewPostgresArticleStore(db, logger),
		commentStore: postgres.NewPostgresCommentStore(db, logger),
		userStore:    postgres.NewPostgresUserStore(db, logger),
	}
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}

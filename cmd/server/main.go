// Command server runs the newsroom REST API: a news/discussion backend
// exposing topics, articles, comments, and users over HTTP, backed by
// PostgreSQL.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/newsroom-dev/newsroom-api/internal/config"
	"github.com/newsroom-dev/newsroom-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

// run wires up the application and blocks until shutdown. Split from
// main so setup failures surface as errors rather than os.Exit calls
// scattered through the startup path.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := setupAppDatabase(cfg, log)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := runMigrations(ctx, db, log); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Error("failed to close database connection", "error", closeErr)
		}
		return err
	}

	app := newApplication(cfg, log, db)
	router := app.setupRouter()

	return app.startHTTPServer(ctx, router)
}

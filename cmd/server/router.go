package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/newsroom-dev/newsroom-api/internal/api"
	apiMiddleware "github.com/newsroom-dev/newsroom-api/internal/api/middleware"
	"github.com/newsroom-dev/newsroom-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Bound every request-response cycle, database round trips included
	r.Use(middleware.Timeout(time.Duration(app.config.Server.RequestTimeoutSeconds) * time.Second))
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's stores
	topicHandler := api.NewTopicHandler(app.topicStore, app.logger)
	articleHandler := api.NewArticleHandler(app.articleStore, app.logger)
	commentHandler := api.NewCommentHandler(app.commentStore, app.logger)
	userHandler := api.NewUserHandler(app.userStore, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/", api.GetEndpoints)

		r.Get("/topics", topicHandler.GetTopics)

		r.Get("/articles", articleHandler.ListArticles)
		r.Get("/articles/{article_id}", articleHandler.GetArticleByID)
		r.Patch("/articles/{article_id}", articleHandler.PatchArticleVotes)

		r.Get("/articles/{article_id}/comments", commentHandler.GetCommentsForArticle)
		r.Post("/articles/{article_id}/comments", commentHandler.PostComment)

		r.Delete("/comments/{comment_id}", commentHandler.DeleteComment)

		r.Get("/users", userHandler.GetUsers)
	})

	// Every unmatched route resolves to the same fixed 404 body
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, api.NotFoundMessage)
	})

	// Health check endpoint
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}

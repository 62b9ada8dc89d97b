package api

import (
	"log/slog"
	"net/http"

	"github.com/newsroom-dev/newsroom-api/internal/api/shared"
	"github.com/newsroom-dev/newsroom-api/internal/platform/logger"
	"github.com/newsroom-dev/newsroom-api/internal/store"
)

// PatchArticleRequest represents the request body for adjusting an
// article's votes. IncVotes is a pointer so a missing field is
// distinguishable from an explicit zero.
type PatchArticleRequest struct {
	IncVotes *int `json:"inc_votes"`
}

// ArticleHandler handles article-related HTTP requests
type ArticleHandler struct {
	articleStore store.ArticleStore
	logger       *slog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(articleStore store.ArticleStore, logger *slog.Logger) *ArticleHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArticleHandler{
		articleStore: articleStore,
		logger:       logger.With(slog.String("component", "article_handler")),
	}
}

// GetArticleByID handles GET /api/articles/{article_id} requests
func (h *ArticleHandler) GetArticleByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	articleID, err := getPathInt(r, "article_id")
	if err != nil {
		log.Warn("invalid article_id path parameter")
		HandleAPIError(w, r, err, "")
		return
	}

	article, err := h.articleStore.GetByID(r.Context(), articleID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch article")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ArticleResponse{Article: article})
}

// ListArticles handles GET /api/articles requests, supporting the
// sort_by, order, and topic query parameters.
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	params := r.URL.Query()
	query := store.NewArticleQuery(
		params.Get("sort_by"),
		params.Get("order"),
		params.Get("topic"),
	)

	// Reject invalid sort parameters here, before the store is asked to
	// build any SQL.
	if err := query.Validate(); err != nil {
		log.Warn("invalid article listing query",
			slog.String("sort_by", query.SortBy),
			slog.String("order", query.Order))
		HandleAPIError(w, r, err, "")
		return
	}

	articles, err := h.articleStore.List(r.Context(), query)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch articles")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ArticlesResponse{Articles: articles})
}

// PatchArticleVotes handles PATCH /api/articles/{article_id} requests
func (h *ArticleHandler) PatchArticleVotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	articleID, err := getPathInt(r, "article_id")
	if err != nil {
		log.Warn("invalid article_id path parameter")
		HandleAPIError(w, r, err, "")
		return
	}

	// A body that fails to decode (e.g. a non-numeric inc_votes) or
	// omits inc_votes entirely is a bad request.
	var req PatchArticleRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("malformed patch article body", slog.Int("article_id", articleID))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Bad Request")
		return
	}
	if req.IncVotes == nil {
		log.Warn("missing inc_votes field", slog.Int("article_id", articleID))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Bad Request")
		return
	}

	article, err := h.articleStore.IncrementVotes(r.Context(), articleID, *req.IncVotes)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update article votes")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ArticleResponse{Article: article})
}

package api

import (
	"log/slog"
	"net/http"

	"github.com/newsroom-dev/newsroom-api/internal/api/shared"
	"github.com/newsroom-dev/newsroom-api/internal/domain"
	"github.com/newsroom-dev/newsroom-api/internal/platform/logger"
	"github.com/newsroom-dev/newsroom-api/internal/store"
)

// NoCommentsMessage is returned with a 200 when an article exists but
// has no comments yet.
const NoCommentsMessage = "There are no comments about this article"

// CreateCommentRequest represents the request body for posting a comment.
type CreateCommentRequest struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	commentStore store.CommentStore
	logger       *slog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentStore store.CommentStore, logger *slog.Logger) *CommentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CommentHandler{
		commentStore: commentStore,
		logger:       logger.With(slog.String("component", "comment_handler")),
	}
}

// GetCommentsForArticle handles GET /api/articles/{article_id}/comments requests
func (h *CommentHandler) GetCommentsForArticle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	articleID, err := getPathInt(r, "article_id")
	if err != nil {
		log.Warn("invalid article_id path parameter")
		HandleAPIError(w, r, err, "")
		return
	}

	comments, err := h.commentStore.ListByArticle(r.Context(), articleID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch comments")
		return
	}

	// An article with no comments is a success, rendered with an
	// explanatory message rather than an empty collection.
	if len(comments) == 0 {
		shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Msg: NoCommentsMessage})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CommentsResponse{Comments: comments})
}

// PostComment handles POST /api/articles/{article_id}/comments requests
func (h *CommentHandler) PostComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	articleID, err := getPathInt(r, "article_id")
	if err != nil {
		log.Warn("invalid article_id path parameter")
		HandleAPIError(w, r, err, "")
		return
	}

	var req CreateCommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("malformed post comment body", slog.Int("article_id", articleID))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Bad Request")
		return
	}

	// Missing username/body surface as the comment's own validation
	// errors, which carry the product-specified messages.
	comment, err := domain.NewComment(req.Username, req.Body, articleID)
	if err != nil {
		log.Warn("comment validation failed",
			slog.Int("article_id", articleID),
			slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return
	}

	created, err := h.commentStore.Create(r.Context(), comment)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create comment")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CommentResponse{Comment: created})
}

// DeleteComment handles DELETE /api/comments/{comment_id} requests
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	commentID, err := getPathInt(r, "comment_id")
	if err != nil {
		log.Warn("invalid comment_id path parameter")
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.commentStore.Delete(r.Context(), commentID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete comment")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

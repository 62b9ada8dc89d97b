package api

import (
	"log/slog"
	"net/http"

	"github.com/newsroom-dev/newsroom-api/internal/api/shared"
	"github.com/newsroom-dev/newsroom-api/internal/store"
)

// TopicHandler handles topic-related HTTP requests
type TopicHandler struct {
	topicStore store.TopicStore
	logger     *slog.Logger
}

// NewTopicHandler creates a new TopicHandler
func NewTopicHandler(topicStore store.TopicStore, logger *slog.Logger) *TopicHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TopicHandler{
		topicStore: topicStore,
		logger:     logger.With(slog.String("component", "topic_handler")),
	}
}

// GetTopics handles GET /api/topics requests
func (h *TopicHandler) GetTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topicStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch topics")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TopicsResponse{Topics: topics})
}

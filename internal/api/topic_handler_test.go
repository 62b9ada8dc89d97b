package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/newsroom-dev/newsroom-api/internal/domain"
	"github.com/newsroom-dev/newsroom-api/internal/mocks"
)

func TestGetTopics(t *testing.T) {
	t.Run("returns_all_topics", func(t *testing.T) {
		topicStore := &mocks.MockTopicStore{
			Topics: []domain.Topic{
				{Slug: "coding", Description: "Code is love, code is life"},
				{Slug: "cooking", Description: "Hey good looking, what you got cooking?"},
			},
		}

		r := chi.NewRouter()
		r.Get("/api/topics", NewTopicHandler(topicStore, nil).GetTopics)

		rr := executeRequest(t, r, http.MethodGet, "/api/topics", nil)

		assert.Equal(t, http.StatusOK, rr.Code)

		var body TopicsResponse
		decodeBody(t, rr, &body)
		assert.Len(t, body.Topics, 2)
		assert.Equal(t, "coding", body.Topics[0].Slug)
	})

	t.Run("store_failure_returns_500_with_generic_message", func(t *testing.T) {
		topicStore := &mocks.MockTopicStore{
			ListFn: func(ctx context.Context) ([]domain.Topic, error) {
				return nil, errors.New("pq: relation \"topics\" does not exist")
			},
		}

		r := chi.NewRouter()
		r.Get("/api/topics", NewTopicHandler(topicStore, nil).GetTopics)

		rr := executeRequest(t, r, http.MethodGet, "/api/topics", nil)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var body errorBody
		decodeBody(t, rr, &body)
		// Raw database error text must never reach the client.
		assert.Equal(t, "Failed to fetch topics", body.Msg)
		assert.NotContains(t, rr.Body.String(), "relation")
	})
}

package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsroom-dev/newsroom-api/internal/api"
	"github.com/newsroom-dev/newsroom-api/internal/config"
	"github.com/newsroom-dev/newsroom-api/internal/domain"
	"github.com/newsroom-dev/newsroom-api/internal/mocks"
)

func newTestApplication() *application {
	return &application{
		config: &config.Config{
			Server: config.ServerConfig{
				Port:                  9090,
				LogLevel:              "info",
				RequestTimeoutSeconds: 30,
			},
		},
		logger:       slog.Default(),
		topicStore:   &mocks.MockTopicStore{Topics: []domain.Topic{{Slug: "coding"}}},
		articleStore: mocks.NewMockArticleStore(),
		commentStore: mocks.NewMockCommentStore(),
		userStore:    &mocks.MockUserStore{},
	}
}

func TestRouterRoutes(t *testing.T) {
	router := newTestApplication().setupRouter()

	t.Run("unmatched_route_returns_fixed_404_body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/notARoute", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var body struct {
			Msg string `json:"msg"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, api.NotFoundMessage, body.Msg)
	})

	t.Run("unmatched_api_route_returns_fixed_404_body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/notARoute", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), api.NotFoundMessage)
	})

	t.Run("endpoint_catalog_is_served_at_api_root", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "GET /api/topics")
	})

	t.Run("topics_route_is_wired", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/topics", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "coding")
	})

	t.Run("health_check_returns_ok", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "OK", rr.Body.String())
	})
}

package api

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsroom-dev/newsroom-api/internal/domain"
	"github.com/newsroom-dev/newsroom-api/internal/mocks"
	"github.com/newsroom-dev/newsroom-api/internal/store"
)

func newArticleRouter(articleStore store.ArticleStore) http.Handler {
	h := NewArticleHandler(articleStore, nil)

	r := chi.NewRouter()
	r.Get("/api/articles", h.ListArticles)
	r.Get("/api/articles/{article_id}", h.GetArticleByID)
	r.Patch("/api/articles/{article_id}", h.PatchArticleVotes)
	return r
}

func seededArticleStore() *mocks.MockArticleStore {
	articleStore := mocks.NewMockArticleStore()
	articleStore.Articles[1] = &domain.Article{
		ArticleID:    1,
		Title:        "Running a Node App",
		Topic:        "coding",
		Author:       "butter_bridge",
		Body:         "some body",
		CreatedAt:    time.Date(2020, 11, 7, 6, 3, 0, 0, time.UTC),
		Votes:        100,
		CommentCount: 11,
	}
	return articleStore
}

func TestGetArticleByID(t *testing.T) {
	t.Run("returns_article", func(t *testing.T) {
		r := newArticleRouter(seededArticleStore())

		rr := executeRequest(t, r, http.MethodGet, "/api/articles/1", nil)

		assert.Equal(t, http.StatusOK, rr.Code)

		var body ArticleResponse
		decodeBody(t, rr, &body)
		require.NotNil(t, body.Article)
		assert.Equal(t, 1, body.Article.ArticleID)
		assert.Equal(t, 11, body.Article.CommentCount)
	})

	t.Run("unknown_id_returns_404", func(t *testing.T) {
		r := newArticleRouter(seededArticleStore())

		rr := executeRequest(t, r, http.MethodGet, "/api/articles/9999", nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var body errorBody
		decodeBody(t, rr, &body)
		assert.Equal(t, "Article Not Found", body.Msg)
	})

	t.Run("non_numeric_id_returns_400_without_touching_the_store", func(t *testing.T) {
		articleStore := &mocks.MockArticleStore{
			GetByIDFn: func(ctx context.Context, id int) (*domain.Article, error) {
				t.Fatal("store must not be called for a malformed id")
				return nil, nil
			},
		}
		r := newArticleRouter(articleStore)

		rr := executeRequest(t, r, http.MethodGet, "/api/articles/notAnID", nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var body errorBody
		decodeBody(t, rr, &body)
		assert.Equal(t, "Bad Request", body.Msg)
	})
}

func TestListArticles(t *testing.T) {
	t.Run("defaults_to_created_at_descending", func(t *testing.T) {
		var captured store.ArticleQuery
		articleStore := &mocks.MockArticleStore{
			ListFn: func(ctx context.Context, query store.ArticleQuery) ([]domain.Article, error) {
				captured = query
				return []domain.Article{}, nil
			},
		}
		r := newArticleRouter(articleStore)

		rr := executeRequest(t, r, http.MethodGet, "/api/articles", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, store.DefaultArticleSort, captured.SortBy)
		assert.Equal(t, store.DefaultArticleOrder, captured.Order)
		assert.Empty(t, captured.Topic)
	})

	t.Run("forwards_sort_order_and_topic", func(t *testing.T) {
		var captured store.ArticleQuery
		articleStore := &mocks.MockArticleStore{
			ListFn: func(ctx context.Context, query store.ArticleQuery) ([]domain.Article, error) {
				captured = query
				return []domain.Article{}, nil
			},
		}
		r := newArticleRouter(articleStore)

		rr := executeRequest(t, r,
			http.MethodGet, "/api/articles?sort_by=title&order=asc&topic=coding", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "title", captured.SortBy)
		assert.Equal(t, "asc", captured.Order)
		assert.Equal(t, "coding", captured.Topic)
	})

	t.Run("invalid_sort_by_returns_400_without_touching_the_store", func(t *testing.T) {
		articleStore := &mocks.MockArticleStore{
			ListFn: func(ctx context.Context, query store.ArticleQuery) ([]domain.Article, error) {
				t.Fatal("store must not be called for an invalid query")
				return nil, nil
			},
		}
		r := newArticleRouter(articleStore)

		rr := executeRequest(t, r,
			http.MethodGet, "/api/articles?sort_by=invalid_input_column", nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid_order_returns_400", func(t *testing.T) {
		r := newArticleRouter(mocks.NewMockArticleStore())

		rr := executeRequest(t, r, http.MethodGet, "/api/articles?order=sideways", nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestPatchArticleVotes(t *testing.T) {
	t.Run("increments_votes", func(t *testing.T) {
		r := newArticleRouter(seededArticleStore())

		rr := executeRequest(t, r, http.MethodPatch, "/api/articles/1",
			strings.NewReader(`{"inc_votes": 100}`))

		assert.Equal(t, http.StatusOK, rr.Code)

		var body ArticleResponse
		decodeBody(t, rr, &body)
		require.NotNil(t, body.Article)
		assert.Equal(t, 200, body.Article.Votes)
	})

	t.Run("negative_increment_decrements_votes", func(t *testing.T) {
		r := newArticleRouter(seededArticleStore())

		rr := executeRequest(t, r, http.MethodPatch, "/api/articles/1",
			strings.NewReader(`{"inc_votes": -10}`))

		assert.Equal(t, http.StatusOK, rr.Code)

		var body ArticleResponse
		decodeBody(t, rr, &body)
		assert.Equal(t, 90, body.Article.Votes)
	})

	t.Run("unknown_article_returns_404", func(t *testing.T) {
		r := newArticleRouter(seededArticleStore())

		rr := executeRequest(t, r, http.MethodPatch, "/api/articles/9999",
			strings.NewReader(`{"inc_votes": 1}`))

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var body errorBody
		decodeBody(t, rr, &body)
		assert.Equal(t, "Article Not Found", body.Msg)
	})

	t.Run("non_numeric_id_returns_400", func(t *testing.T) {
		r := newArticleRouter(seededArticleStore())

		rr := executeRequest(t, r, http.MethodPatch, "/api/articles/notAnID",
			strings.NewReader(`{"inc_votes": 1}`))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing_inc_votes_returns_400", func(t *testing.T) {
		r := newArticleRouter(seededArticleStore())

		rr := executeRequest(t, r, http.MethodPatch, "/api/articles/1",
			strings.NewReader(`{}`))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("non_numeric_inc_votes_returns_400", func(t *testing.T) {
		r := newArticleRouter(seededArticleStore())

		rr := executeRequest(t, r, http.MethodPatch, "/api/articles/1",
			strings.NewReader(`{"inc_votes": "cat"}`))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

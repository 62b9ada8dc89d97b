package store

import (
	"context"
	"fmt"

	"github.com/newsroom-dev/newsroom-api/internal/domain"
)

// Sort directions accepted by ArticleQuery.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Defaults applied by NewArticleQuery when the caller supplies nothing.
const (
	DefaultArticleSort  = "created_at"
	DefaultArticleOrder = OrderDesc
)

// articleSortColumns is the closed allow-list of sort keys for article
// listings. Caller-supplied identifiers are checked against this list
// before any SQL is composed; they are never interpolated directly.
var articleSortColumns = map[string]bool{
	"article_id":    true,
	"title":         true,
	"topic":         true,
	"author":        true,
	"created_at":    true,
	"votes":         true,
	"comment_count": true,
}

// ArticleQuery holds validated listing parameters for ArticleStore.List.
// Construct it with NewArticleQuery; a zero ArticleQuery fails validation.
type ArticleQuery struct {
	SortBy string
	Order  string
	Topic  string // empty means no topic filter
}

// NewArticleQuery builds an ArticleQuery, applying defaults for empty
// sortBy/order. The returned query is not yet validated.
func NewArticleQuery(sortBy, order, topic string) ArticleQuery {
	if sortBy == "" {
		sortBy = DefaultArticleSort
	}
	if order == "" {
		order = DefaultArticleOrder
	}
	return ArticleQuery{SortBy: sortBy, Order: order, Topic: topic}
}

// Validate checks the sort key and direction against their allow-lists.
// Returns an error wrapping ErrInvalidQuery on any violation.
func (q ArticleQuery) Validate() error {
	if !articleSortColumns[q.SortBy] {
		return fmt.Errorf("%w: sort_by %q is not a sortable column", ErrInvalidQuery, q.SortBy)
	}
	if q.Order != OrderAsc && q.Order != OrderDesc {
		return fmt.Errorf("%w: order %q must be %q or %q", ErrInvalidQuery, q.Order, OrderAsc, OrderDesc)
	}
	return nil
}

// ArticleStore defines the interface for article data persistence.
type ArticleStore interface {
	// GetByID retrieves an article by its unique ID, with CommentCount
	// computed by aggregation.
	// Returns ErrArticleNotFound if the article does not exist.
	GetByID(ctx context.Context, id int) (*domain.Article, error)

	// List retrieves articles matching the given query, each with
	// CommentCount computed by aggregation. Filtering, sorting and the
	// comment-count aggregation share a single query path.
	// Returns an error wrapping ErrInvalidQuery if the query fails
	// validation; no SQL is constructed in that case.
	List(ctx context.Context, query ArticleQuery) ([]domain.Article, error)

	// IncrementVotes atomically applies votes += delta to the article
	// and returns the updated row. The increment is a single UPDATE
	// expression, so concurrent increments never lose updates.
	// Returns ErrArticleNotFound if the article does not exist.
	IncrementVotes(ctx context.Context, id, delta int) (*domain.Article, error)
}

package mocks

import (
	"context"

	"github.com/newsroom-dev/newsroom-api/internal/domain"
	"github.com/newsroom-dev/newsroom-api/internal/store"
)

// MockTopicStore implements store.TopicStore for testing
type MockTopicStore struct {
	ListFn func(ctx context.Context) ([]domain.Topic, error)

	Topics []domain.Topic
}

// List implements the TopicStore interface
func (m *MockTopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	if m.Topics == nil {
		return []domain.Topic{}, nil
	}
	return m.Topics, nil
}

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	ListFn func(ctx context.Context) ([]domain.User, error)

	Users []domain.User
}

// List implements the UserStore interface
func (m *MockUserStore) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	if m.Users == nil {
		return []domain.User{}, nil
	}
	return m.Users, nil
}

// MockArticleStore implements store.ArticleStore for testing
type MockArticleStore struct {
	GetByIDFn        func(ctx context.Context, id int) (*domain.Article, error)
	ListFn           func(ctx context.Context, query store.ArticleQuery) ([]domain.Article, error)
	IncrementVotesFn func(ctx context.Context, id, delta int) (*domain.Article, error)

	// Data for default implementation, keyed by article ID
	Articles map[int]*domain.Article
}

// NewMockArticleStore creates a new mock store with initialized defaults
func NewMockArticleStore() *MockArticleStore {
	return &MockArticleStore{
		Articles: make(map[int]*domain.Article),
	}
}

// GetByID implements the ArticleStore interface
func (m *MockArticleStore) GetByID(ctx context.Context, id int) (*domain.Article, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	article, ok := m.Articles[id]
	if !ok {
		return nil, store.ErrArticleNotFound
	}
	return article, nil
}

// List implements the ArticleStore interface
func (m *MockArticleStore) List(
	ctx context.Context,
	query store.ArticleQuery,
) ([]domain.Article, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, query)
	}

	if err := query.Validate(); err != nil {
		return nil, err
	}

	articles := []domain.Article{}
	for _, article := range m.Articles {
		if query.Topic != "" && article.Topic != query.Topic {
			continue
		}
		articles = append(articles, *article)
	}
	return articles, nil
}

// IncrementVotes implements the ArticleStore interface
func (m *MockArticleStore) IncrementVotes(
	ctx context.Context,
	id, delta int,
) (*domain.Article, error) {
	if m.IncrementVotesFn != nil {
		return m.IncrementVotesFn(ctx, id, delta)
	}

	article, ok := m.Articles[id]
	if !ok {
		return nil, store.ErrArticleNotFound
	}
	article.Votes += delta
	return article, nil
}

// MockCommentStore implements store.CommentStore for testing
type MockCommentStore struct {
	ListByArticleFn func(ctx context.Context, articleID int) ([]domain.Comment, error)
	CreateFn        func(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	DeleteFn        func(ctx context.Context, commentID int) error

	// Data for default implementation
	Comments      map[int]*domain.Comment
	ArticleIDs    map[int]bool // articles that exist
	Usernames     map[string]bool
	NextCommentID int
}

// NewMockCommentStore creates a new mock store with initialized defaults
func NewMockCommentStore() *MockCommentStore {
	return &MockCommentStore{
		Comments:      make(map[int]*domain.Comment),
		ArticleIDs:    make(map[int]bool),
		Usernames:     make(map[string]bool),
		NextCommentID: 1,
	}
}

// ListByArticle implements the CommentStore interface
func (m *MockCommentStore) ListByArticle(
	ctx context.Context,
	articleID int,
) ([]domain.Comment, error) {
	if m.ListByArticleFn != nil {
		return m.ListByArticleFn(ctx, articleID)
	}

	if !m.ArticleIDs[articleID] {
		return nil, store.ErrArticleNotFound
	}

	comments := []domain.Comment{}
	for _, comment := range m.Comments {
		if comment.ArticleID == articleID {
			comments = append(comments, *comment)
		}
	}
	return comments, nil
}

// Create implements the CommentStore interface
func (m *MockCommentStore) Create(
	ctx context.Context,
	comment *domain.Comment,
) (*domain.Comment, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, comment)
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}
	if !m.ArticleIDs[comment.ArticleID] {
		return nil, store.ErrArticleNotFound
	}
	if !m.Usernames[comment.Author] {
		return nil, store.ErrUserNotFound
	}

	created := *comment
	created.CommentID = m.NextCommentID
	m.NextCommentID++
	m.Comments[created.CommentID] = &created
	return &created, nil
}

// Delete implements the CommentStore interface
func (m *MockCommentStore) Delete(ctx context.Context, commentID int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, commentID)
	}

	if _, ok := m.Comments[commentID]; !ok {
		return store.ErrCommentNotFound
	}
	delete(m.Comments, commentID)
	return nil
}

// Interface conformance checks
var (
	_ store.TopicStore   = (*MockTopicStore)(nil)
	_ store.UserStore    = (*MockUserStore)(nil)
	_ store.ArticleStore = (*MockArticleStore)(nil)
	_ store.CommentStore = (*MockCommentStore)(nil)
)

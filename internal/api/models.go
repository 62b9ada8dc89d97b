package api

import "github.com/newsroom-dev/newsroom-api/internal/domain"

// Response envelopes. Every success body wraps its resource under the
// collection/singular name of the resource.

// TopicsResponse wraps a topic listing.
type TopicsResponse struct {
	Topics []domain.Topic `json:"topics"`
}

// ArticleResponse wraps a single article.
type ArticleResponse struct {
	Article *domain.Article `json:"article"`
}

// ArticlesResponse wraps an article listing.
type ArticlesResponse struct {
	Articles []domain.Article `json:"articles"`
}

// CommentResponse wraps a single comment.
type CommentResponse struct {
	Comment *domain.Comment `json:"comment"`
}

// CommentsResponse wraps a comment listing.
type CommentsResponse struct {
	Comments []domain.Comment `json:"comments"`
}

// UsersResponse wraps a user listing.
type UsersResponse struct {
	Users []domain.User `json:"users"`
}

// MessageResponse carries an explanatory message on a success response,
// e.g. an article with no comments yet.
type MessageResponse struct {
	Msg string `json:"msg"`
}

package domain

import (
	"errors"
	"time"
)

// Article validation errors
var (
	ErrEmptyArticleTitle = errors.New("article title cannot be empty")
	ErrEmptyArticleTopic = errors.New("article topic cannot be empty")
	ErrEmptyArticleBody  = errors.New("article body cannot be empty")
)

// Article is a posted piece of content under a topic.
// CommentCount is derived by aggregation at read time and never stored;
// Votes are only ever mutated through an atomic increment.
type Article struct {
	ArticleID     int       `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

// Validate checks if the Article has valid data.
func (a *Article) Validate() error {
	if a.Title == "" {
		return ErrEmptyArticleTitle
	}
	if a.Topic == "" {
		return ErrEmptyArticleTopic
	}
	if a.Body == "" {
		return ErrEmptyArticleBody
	}
	if a.Author == "" {
		return ErrEmptyUsername
	}
	return nil
}

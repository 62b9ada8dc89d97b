package domain

import (
	"errors"
	"time"
)

// Comment validation errors
var (
	ErrEmptyCommentAuthor = errors.New("comment author cannot be empty")
	ErrEmptyCommentBody   = errors.New("comment body cannot be empty")
)

// Comment is a reply attached to an article. Comments are created and
// deleted through the API; no update operation exists.
type Comment struct {
	CommentID int       `json:"comment_id"`
	Body      string    `json:"body"`
	ArticleID int       `json:"article_id"`
	Author    string    `json:"author"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComment creates a new Comment for the given article with zero votes
// and the current timestamp. Returns an error if validation fails.
//
// The referenced article and author are not checked here; referential
// integrity is enforced by the store on insert.
func NewComment(author, body string, articleID int) (*Comment, error) {
	comment := &Comment{
		Body:      body,
		ArticleID: articleID,
		Author:    author,
		Votes:     0,
		CreatedAt: time.Now().UTC(),
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	return comment, nil
}

// Validate checks if the Comment has valid data.
func (c *Comment) Validate() error {
	if c.Author == "" {
		return ErrEmptyCommentAuthor
	}
	if c.Body == "" {
		return ErrEmptyCommentBody
	}
	return nil
}

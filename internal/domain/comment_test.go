package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComment(t *testing.T) {
	tests := []struct {
		name      string
		author    string
		body      string
		articleID int
		wantErr   error
	}{
		{
			name:      "valid_comment",
			author:    "butter_bridge",
			body:      "What a cool article",
			articleID: 1,
			wantErr:   nil,
		},
		{
			name:      "missing_author",
			author:    "",
			body:      "What a cool article",
			articleID: 1,
			wantErr:   ErrEmptyCommentAuthor,
		},
		{
			name:      "missing_body",
			author:    "butter_bridge",
			body:      "",
			articleID: 1,
			wantErr:   ErrEmptyCommentBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comment, err := NewComment(tt.author, tt.body, tt.articleID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, comment)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, comment)
			assert.Equal(t, tt.author, comment.Author)
			assert.Equal(t, tt.body, comment.Body)
			assert.Equal(t, tt.articleID, comment.ArticleID)
			assert.Zero(t, comment.Votes)
			assert.False(t, comment.CreatedAt.IsZero())
		})
	}
}

func TestCommentValidate(t *testing.T) {
	comment := Comment{Author: "icellusedkars", Body: "well said", ArticleID: 2}
	assert.NoError(t, comment.Validate())

	comment.Author = ""
	assert.ErrorIs(t, comment.Validate(), ErrEmptyCommentAuthor)
}

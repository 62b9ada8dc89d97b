package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicStoreList(t *testing.T) {
	t.Run("returns_all_topics", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery("FROM topics").
			WillReturnRows(sqlmock.NewRows([]string{"slug", "description"}).
				AddRow("coding", "Code is love, code is life").
				AddRow("cooking", "Hey good looking, what you got cooking?"))

		topics, err := NewPostgresTopicStore(db, nil).List(context.Background())

		require.NoError(t, err)
		require.Len(t, topics, 2)
		assert.Equal(t, "coding", topics[0].Slug)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty_table_returns_empty_slice", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery("FROM topics").
			WillReturnRows(sqlmock.NewRows([]string{"slug", "description"}))

		topics, err := NewPostgresTopicStore(db, nil).List(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, topics)
		assert.Empty(t, topics)
	})

	t.Run("query_error_propagates", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery("FROM topics").
			WillReturnError(errors.New("connection refused"))

		topics, err := NewPostgresTopicStore(db, nil).List(context.Background())

		assert.Error(t, err)
		assert.Nil(t, topics)
	})
}

func TestUserStoreList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"username", "name", "avatar_url"}).
			AddRow("butter_bridge", "jonny", "https://example.test/jonny.jpg").
			AddRow("icellusedkars", "sam", "https://example.test/sam.jpg"))

	users, err := NewPostgresUserStore(db, nil).List(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "butter_bridge", users[0].Username)
	assert.Equal(t, "sam", users[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

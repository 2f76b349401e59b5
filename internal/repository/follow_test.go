package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/AlisaFetisova-1/hw05-final/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_Lifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	reader := &models.User{Username: "reader", Email: "reader@example.com", Password: "x"}
	author := &models.User{Username: "author", Email: "author@example.com", Password: "x"}
	require.NoError(t, db.Create(reader).Error)
	require.NoError(t, db.Create(author).Error)

	t.Run("Create is idempotent", func(t *testing.T) {
		created, err := repo.Create(ctx, reader.ID, author.ID)
		require.NoError(t, err)
		assert.True(t, created)

		created, err = repo.Create(ctx, reader.ID, author.ID)
		require.NoError(t, err)
		assert.False(t, created)

		count, err := repo.CountFollowing(ctx, reader.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Exists and counts", func(t *testing.T) {
		exists, err := repo.Exists(ctx, reader.ID, author.ID)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.Exists(ctx, author.ID, reader.ID)
		require.NoError(t, err)
		assert.False(t, exists, "following is not symmetric")

		followers, err := repo.CountFollowers(ctx, author.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), followers)

		ids, err := repo.ListAuthorIDs(ctx, reader.ID)
		require.NoError(t, err)
		assert.Equal(t, []uint{author.ID}, ids)
	})

	t.Run("Delete is idempotent", func(t *testing.T) {
		removed, err := repo.Delete(ctx, reader.ID, author.ID)
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = repo.Delete(ctx, reader.ID, author.ID)
		require.NoError(t, err)
		assert.False(t, removed)

		exists, err := repo.Exists(ctx, reader.ID, author.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestFollowRepository_Delete_NoRows(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "follows" WHERE user_id = $1 AND author_id = $2`)).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	removed, err := repo.Delete(ctx, 1, 2)
	assert.NoError(t, err)
	assert.False(t, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowRepository_Exists_Query(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "follows" WHERE user_id = $1 AND author_id = $2`)).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.Exists(ctx, 1, 2)
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

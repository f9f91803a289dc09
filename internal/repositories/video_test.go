package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sshuster/viral-video-whisperer-pro/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedVideoOwner(t *testing.T, db *sqlx.DB, username string) int64 {
	t.Helper()
	user, err := NewUserWriteRepository(db).Save(context.Background(), username, "hash", username, models.RoleUser)
	require.NoError(t, err)
	return user.ID
}

func TestVideoRepositories_SaveAndList(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	aliceID := seedVideoOwner(t, db, "alice")
	bobID := seedVideoOwner(t, db, "bob")

	writeRepo := NewVideoWriteRepository(db)
	readRepo := NewVideoReadRepository(db)

	first := &models.VideoDB{
		UserID:      aliceID,
		URL:         "https://example.com/v/1",
		Platform:    "tiktok",
		Description: "first clip",
		Timestamp:   "2024-01-01T00:00:00Z",
		Suggestions: `["a","b"]`,
		Metrics:     `{"engagement":75,"retention":68,"shareability":82,"overall":72}`,
	}
	require.NoError(t, writeRepo.Save(ctx, first))
	assert.NotZero(t, first.ID)

	second := &models.VideoDB{
		UserID:      bobID,
		URL:         "https://example.com/v/2",
		Platform:    "youtube",
		Timestamp:   "2024-01-02T00:00:00Z",
		Suggestions: `[]`,
		Metrics:     `{}`,
	}
	require.NoError(t, writeRepo.Save(ctx, second))
	assert.Greater(t, second.ID, first.ID)

	t.Run("list all", func(t *testing.T) {
		videos, err := readRepo.List(ctx, nil)
		require.NoError(t, err)
		require.Len(t, videos, 2)
		assert.Equal(t, first.ID, videos[0].ID)
		assert.Equal(t, `["a","b"]`, videos[0].Suggestions)
	})

	t.Run("list scoped to user", func(t *testing.T) {
		videos, err := readRepo.List(ctx, &bobID)
		require.NoError(t, err)
		require.Len(t, videos, 1)
		assert.Equal(t, bobID, videos[0].UserID)
	})

	t.Run("list for user without videos", func(t *testing.T) {
		ghostID := int64(9999)
		videos, err := readRepo.List(ctx, &ghostID)
		require.NoError(t, err)
		assert.Empty(t, videos)
	})

	t.Run("get by id", func(t *testing.T) {
		video, err := readRepo.GetByID(ctx, first.ID)
		require.NoError(t, err)
		require.NotNil(t, video)
		assert.Equal(t, "first clip", video.Description)
	})

	t.Run("get unknown id returns nil", func(t *testing.T) {
		video, err := readRepo.GetByID(ctx, 9999)
		assert.NoError(t, err)
		assert.Nil(t, video)
	})

	t.Run("list with usernames", func(t *testing.T) {
		rows, err := readRepo.ListWithUsernames(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "alice", rows[0].Username)
		assert.Equal(t, "bob", rows[1].Username)
	})
}

func TestVideoWriteRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	aliceID := seedVideoOwner(t, db, "alice")

	writeRepo := NewVideoWriteRepository(db)
	readRepo := NewVideoReadRepository(db)

	video := &models.VideoDB{
		UserID:      aliceID,
		URL:         "https://example.com/v/1",
		Platform:    "tiktok",
		Timestamp:   "2024-01-01T00:00:00Z",
		Suggestions: `[]`,
		Metrics:     `{}`,
	}
	require.NoError(t, writeRepo.Save(ctx, video))

	deleted, err := writeRepo.Delete(ctx, video.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := readRepo.GetByID(ctx, video.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	t.Run("unknown id reports not deleted", func(t *testing.T) {
		deleted, err := writeRepo.Delete(ctx, 9999)
		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestVideoReadRepository_QueryErrors(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db := sqlx.NewDb(mockDB, "sqlite")
	readRepo := NewVideoReadRepository(db)

	mock.ExpectQuery("SELECT id, user_id, url").
		WillReturnError(errors.New("disk I/O error"))

	_, err = readRepo.List(context.Background(), nil)
	assert.ErrorContains(t, err, "disk I/O error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sshuster/viral-video-whisperer-pro/internal/logger"
	"github.com/sshuster/viral-video-whisperer-pro/internal/models"
)

// VideoReadRepository provides read-only access to video rows.
type VideoReadRepository struct {
	db *sqlx.DB
}

func NewVideoReadRepository(db *sqlx.DB) *VideoReadRepository {
	return &VideoReadRepository{db: db}
}

// List returns all videos, optionally scoped to a single user.
func (r *VideoReadRepository) List(ctx context.Context, userID *int64) ([]models.VideoDB, error) {
	query := `
		SELECT id, user_id, url, platform, description, timestamp, suggestions, metrics
		FROM videos
	`
	args := []any{}
	if userID != nil {
		query += ` WHERE user_id = ?`
		args = append(args, *userID)
	}
	query += ` ORDER BY id`

	videos := make([]models.VideoDB, 0)
	err := r.db.SelectContext(ctx, &videos, query, args...)

	logger.Log.Debugw("video query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"rows", len(videos),
		"error", err,
	)

	if err != nil {
		return nil, fmt.Errorf("listing videos: %w", err)
	}

	return videos, nil
}

// GetByID returns the video with the given id, or nil when no such video exists.
func (r *VideoReadRepository) GetByID(ctx context.Context, id int64) (*models.VideoDB, error) {
	const query = `
		SELECT id, user_id, url, platform, description, timestamp, suggestions, metrics
		FROM videos
		WHERE id = ?
	`

	var video models.VideoDB
	err := r.db.GetContext(ctx, &video, query, id)

	logger.Log.Debugw("video query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("selecting video by id: %w", err)
	}

	return &video, nil
}

// ListWithUsernames returns every video joined with its owner's username.
func (r *VideoReadRepository) ListWithUsernames(ctx context.Context) ([]models.AdminVideoRow, error) {
	const query = `
		SELECT v.id, v.user_id, v.url, v.platform, v.description, v.timestamp,
		       v.suggestions, v.metrics, u.username
		FROM videos v
		JOIN users u ON v.user_id = u.id
		ORDER BY v.id
	`

	rows := make([]models.AdminVideoRow, 0)
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Debugw("video query",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, fmt.Errorf("listing videos with usernames: %w", err)
	}

	return rows, nil
}

// VideoWriteRepository provides write access to video rows.
type VideoWriteRepository struct {
	db *sqlx.DB
}

func NewVideoWriteRepository(db *sqlx.DB) *VideoWriteRepository {
	return &VideoWriteRepository{db: db}
}

// Save inserts a new video row and fills in the generated id.
func (r *VideoWriteRepository) Save(ctx context.Context, video *models.VideoDB) error {
	const query = `
		INSERT INTO videos (user_id, url, platform, description, timestamp, suggestions, metrics)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query,
		video.UserID,
		video.URL,
		video.Platform,
		video.Description,
		video.Timestamp,
		video.Suggestions,
		video.Metrics,
	)

	logger.Log.Debugw("video exec",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{video.UserID, video.URL, video.Platform},
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("inserting video: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading inserted video id: %w", err)
	}
	video.ID = id

	return nil
}

// Delete removes the video with the given id. Returns false when no row matched.
func (r *VideoWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM videos WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, id)

	logger.Log.Debugw("video exec",
		"query", query,
		"args", []any{id},
		"error", err,
	)

	if err != nil {
		return false, fmt.Errorf("deleting video: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading deleted video rows: %w", err)
	}

	return affected > 0, nil
}

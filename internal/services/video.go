package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sshuster/viral-video-whisperer-pro/internal/logger"
	"github.com/sshuster/viral-video-whisperer-pro/internal/models"
)

var (
	ErrVideoNotFound = errors.New("video not found")
	ErrUserNotFound  = errors.New("user not found")
)

// VideoReader defines read-only operations for videos.
type VideoReader interface {
	List(ctx context.Context, userID *int64) ([]models.VideoDB, error)
	GetByID(ctx context.Context, id int64) (*models.VideoDB, error)
}

// VideoWriter defines write operations for videos.
type VideoWriter interface {
	Save(ctx context.Context, video *models.VideoDB) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// OwnerReader checks that a submitting user exists.
type OwnerReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// Analyzer produces suggestions and metrics for a submission.
type Analyzer interface {
	Analyze(ctx context.Context, url, platform, description string) ([]string, models.VideoMetrics, error)
}

// VideoService handles video submission, listing, and deletion.
type VideoService struct {
	videos   VideoReader
	writer   VideoWriter
	users    OwnerReader
	analyzer Analyzer
}

// NewVideoService creates a new VideoService instance.
func NewVideoService(videos VideoReader, writer VideoWriter, users OwnerReader, analyzer Analyzer) *VideoService {
	return &VideoService{
		videos:   videos,
		writer:   writer,
		users:    users,
		analyzer: analyzer,
	}
}

// Create runs the analyzer over a submission and stores the resulting video,
// stamped with the current time.
func (svc *VideoService) Create(ctx context.Context, userID int64, url, platform, description string) (*models.Video, error) {
	owner, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check video owner", "err", err)
		return nil, err
	}
	if owner == nil {
		logger.Log.Infow("video submission for unknown user", "user_id", userID)
		return nil, ErrUserNotFound
	}

	suggestions, metrics, err := svc.analyzer.Analyze(ctx, url, platform, description)
	if err != nil {
		logger.Log.Errorw("analyzer failed", "err", err)
		return nil, err
	}

	suggestionsJSON, err := json.Marshal(suggestions)
	if err != nil {
		return nil, fmt.Errorf("encoding suggestions: %w", err)
	}
	metricsJSON, err := json.Marshal(metrics)
	if err != nil {
		return nil, fmt.Errorf("encoding metrics: %w", err)
	}

	row := &models.VideoDB{
		UserID:      userID,
		URL:         url,
		Platform:    platform,
		Description: description,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Suggestions: string(suggestionsJSON),
		Metrics:     string(metricsJSON),
	}

	if err := svc.writer.Save(ctx, row); err != nil {
		logger.Log.Errorw("failed to save video", "err", err)
		return nil, err
	}

	video := models.Video{
		ID:          row.ID,
		UserID:      row.UserID,
		URL:         row.URL,
		Platform:    row.Platform,
		Description: row.Description,
		Timestamp:   row.Timestamp,
		Suggestions: suggestions,
		Metrics:     metrics,
	}
	return &video, nil
}

// List returns all videos, optionally scoped to a single user, with
// suggestions and metrics deserialized.
func (svc *VideoService) List(ctx context.Context, userID *int64) ([]models.Video, error) {
	rows, err := svc.videos.List(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list videos", "err", err)
		return nil, err
	}

	videos := make([]models.Video, 0, len(rows))
	for _, row := range rows {
		video, err := decodeVideo(row)
		if err != nil {
			logger.Log.Errorw("failed to decode stored video", "video_id", row.ID, "err", err)
			return nil, err
		}
		videos = append(videos, video)
	}

	return videos, nil
}

// Delete removes a single video.
func (svc *VideoService) Delete(ctx context.Context, id int64) error {
	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete video", "video_id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrVideoNotFound
	}
	return nil
}

// decodeVideo converts a stored row into the API representation. Malformed
// stored JSON surfaces as an error so handlers report an internal fault.
func decodeVideo(row models.VideoDB) (models.Video, error) {
	var suggestions []string
	if err := json.Unmarshal([]byte(row.Suggestions), &suggestions); err != nil {
		return models.Video{}, fmt.Errorf("decoding suggestions of video %d: %w", row.ID, err)
	}

	var metrics models.VideoMetrics
	if err := json.Unmarshal([]byte(row.Metrics), &metrics); err != nil {
		return models.Video{}, fmt.Errorf("decoding metrics of video %d: %w", row.ID, err)
	}

	return models.Video{
		ID:          row.ID,
		UserID:      row.UserID,
		URL:         row.URL,
		Platform:    row.Platform,
		Description: row.Description,
		Timestamp:   row.Timestamp,
		Suggestions: suggestions,
		Metrics:     metrics,
	}, nil
}

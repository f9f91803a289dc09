package services

import (
	"context"

	"github.com/sshuster/viral-video-whisperer-pro/internal/logger"
	"github.com/sshuster/viral-video-whisperer-pro/internal/models"
)

// Placeholder values exposed on admin listings. Registration timestamps and
// video lifecycle states are not tracked, so both fields are fixed constants.
const (
	placeholderJoinDate = "2023-12-31T00:00:00Z"
	videoStatusActive   = "active"
)

// AdminUserReader lists users together with their video counts.
type AdminUserReader interface {
	ListWithCounts(ctx context.Context) ([]models.AdminUserRow, error)
}

// AdminUserWriter removes users and their videos.
type AdminUserWriter interface {
	Delete(ctx context.Context, id int64) (bool, error)
}

// AdminVideoReader lists videos joined with their owners' usernames.
type AdminVideoReader interface {
	ListWithUsernames(ctx context.Context) ([]models.AdminVideoRow, error)
}

// AdminService handles the admin management operations.
type AdminService struct {
	users      AdminUserReader
	userWriter AdminUserWriter
	videos     AdminVideoReader
}

// NewAdminService creates a new AdminService instance.
func NewAdminService(users AdminUserReader, userWriter AdminUserWriter, videos AdminVideoReader) *AdminService {
	return &AdminService{
		users:      users,
		userWriter: userWriter,
		videos:     videos,
	}
}

// ListUsers returns every user's public profile with video count and the
// placeholder join date.
func (svc *AdminService) ListUsers(ctx context.Context) ([]models.AdminUser, error) {
	rows, err := svc.users.ListWithCounts(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}

	users := make([]models.AdminUser, 0, len(rows))
	for _, row := range rows {
		users = append(users, models.AdminUser{
			ID:              row.ID,
			Username:        row.Username,
			Name:            row.Name,
			Role:            row.Role,
			VideosSubmitted: row.VideosSubmitted,
			JoinDate:        placeholderJoinDate,
		})
	}

	return users, nil
}

// DeleteUser removes a user and all of that user's videos.
func (svc *AdminService) DeleteUser(ctx context.Context, id int64) error {
	deleted, err := svc.userWriter.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

// ListVideos returns every video annotated with the owning username and the
// constant status field.
func (svc *AdminService) ListVideos(ctx context.Context) ([]models.AdminVideo, error) {
	rows, err := svc.videos.ListWithUsernames(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list all videos", "err", err)
		return nil, err
	}

	videos := make([]models.AdminVideo, 0, len(rows))
	for _, row := range rows {
		video, err := decodeVideo(row.VideoDB)
		if err != nil {
			logger.Log.Errorw("failed to decode stored video", "video_id", row.ID, "err", err)
			return nil, err
		}
		videos = append(videos, models.AdminVideo{
			Video:    video,
			Username: row.Username,
			Status:   videoStatusActive,
		})
	}

	return videos, nil
}

package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sshuster/viral-video-whisperer-pro/internal/models"
	"github.com/sshuster/viral-video-whisperer-pro/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAdminService_ListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockUsers := services.NewMockAdminUserReader(ctrl)
		mockUsers.EXPECT().
			ListWithCounts(gomock.Any()).
			Return([]models.AdminUserRow{
				{ID: 1, Username: "muser", Name: "Mock User", Role: "user", VideosSubmitted: 3},
				{ID: 2, Username: "mvc", Name: "Admin User", Role: "admin", VideosSubmitted: 0},
			}, nil)

		svc := services.NewAdminService(mockUsers, services.NewMockAdminUserWriter(ctrl), services.NewMockAdminVideoReader(ctrl))

		users, err := svc.ListUsers(context.Background())
		assert.NoError(t, err)
		assert.Len(t, users, 2)
		assert.Equal(t, int64(3), users[0].VideosSubmitted)
		assert.Equal(t, "2023-12-31T00:00:00Z", users[0].JoinDate)
		assert.Equal(t, "2023-12-31T00:00:00Z", users[1].JoinDate)
	})

	t.Run("no users", func(t *testing.T) {
		mockUsers := services.NewMockAdminUserReader(ctrl)
		mockUsers.EXPECT().ListWithCounts(gomock.Any()).Return(nil, nil)

		svc := services.NewAdminService(mockUsers, services.NewMockAdminUserWriter(ctrl), services.NewMockAdminVideoReader(ctrl))

		users, err := svc.ListUsers(context.Background())
		assert.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("reader error", func(t *testing.T) {
		mockUsers := services.NewMockAdminUserReader(ctrl)
		mockUsers.EXPECT().ListWithCounts(gomock.Any()).Return(nil, errors.New("db error"))

		svc := services.NewAdminService(mockUsers, services.NewMockAdminUserWriter(ctrl), services.NewMockAdminVideoReader(ctrl))

		_, err := svc.ListUsers(context.Background())
		assert.EqualError(t, err, "db error")
	})
}

func TestAdminService_DeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name    string
		deleted bool
		repoErr error
		wantErr error
	}{
		{name: "success", deleted: true},
		{name: "user not found", deleted: false, wantErr: services.ErrUserNotFound},
		{name: "repository error", repoErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter := services.NewMockAdminUserWriter(ctrl)
			mockWriter.EXPECT().Delete(gomock.Any(), int64(1)).Return(tt.deleted, tt.repoErr)

			svc := services.NewAdminService(services.NewMockAdminUserReader(ctrl), mockWriter, services.NewMockAdminVideoReader(ctrl))

			err := svc.DeleteUser(context.Background(), 1)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAdminService_ListVideos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockVideos := services.NewMockAdminVideoReader(ctrl)
		mockVideos.EXPECT().
			ListWithUsernames(gomock.Any()).
			Return([]models.AdminVideoRow{
				{
					VideoDB: models.VideoDB{
						ID:          1,
						UserID:      1,
						URL:         "https://example.com/v/1",
						Platform:    "tiktok",
						Timestamp:   "2024-01-01T00:00:00Z",
						Suggestions: `["a"]`,
						Metrics:     `{"engagement":75,"retention":68,"shareability":82,"overall":72}`,
					},
					Username: "muser",
				},
			}, nil)

		svc := services.NewAdminService(services.NewMockAdminUserReader(ctrl), services.NewMockAdminUserWriter(ctrl), mockVideos)

		videos, err := svc.ListVideos(context.Background())
		assert.NoError(t, err)
		assert.Len(t, videos, 1)
		assert.Equal(t, "muser", videos[0].Username)
		assert.Equal(t, "active", videos[0].Status)
		assert.Equal(t, []string{"a"}, videos[0].Suggestions)
		assert.Equal(t, 72, videos[0].Metrics.Overall)
	})

	t.Run("malformed stored metrics", func(t *testing.T) {
		mockVideos := services.NewMockAdminVideoReader(ctrl)
		mockVideos.EXPECT().
			ListWithUsernames(gomock.Any()).
			Return([]models.AdminVideoRow{
				{
					VideoDB: models.VideoDB{
						ID:          1,
						Suggestions: `["a"]`,
						Metrics:     `not json`,
					},
					Username: "muser",
				},
			}, nil)

		svc := services.NewAdminService(services.NewMockAdminUserReader(ctrl), services.NewMockAdminUserWriter(ctrl), mockVideos)

		_, err := svc.ListVideos(context.Background())
		assert.Error(t, err)
	})

	t.Run("reader error", func(t *testing.T) {
		mockVideos := services.NewMockAdminVideoReader(ctrl)
		mockVideos.EXPECT().ListWithUsernames(gomock.Any()).Return(nil, errors.New("db error"))

		svc := services.NewAdminService(services.NewMockAdminUserReader(ctrl), services.NewMockAdminUserWriter(ctrl), mockVideos)

		_, err := svc.ListVideos(context.Background())
		assert.EqualError(t, err, "db error")
	})
}

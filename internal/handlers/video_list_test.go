package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sshuster/viral-video-whisperer-pro/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestListVideosHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sample := models.Video{
		ID:          1,
		UserID:      2,
		URL:         "https://example.com/v/1",
		Platform:    "tiktok",
		Timestamp:   "2024-01-01T00:00:00Z",
		Suggestions: []string{"a", "b", "c", "d", "e"},
		Metrics:     models.VideoMetrics{Engagement: 75, Retention: 68, Shareability: 82, Overall: 72},
	}

	t.Run("all videos", func(t *testing.T) {
		mockSvc := NewMockVideoLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), gomock.Nil()).
			Return([]models.Video{sample}, nil)

		handler := NewListVideosHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/videos", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 200, rr.Code)

		var resp []models.Video
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp, 1)
		assert.Equal(t, sample, resp[0])
	})

	t.Run("filtered by user_id", func(t *testing.T) {
		mockSvc := NewMockVideoLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), gomock.Not(gomock.Nil())).
			DoAndReturn(func(_ any, userID *int64) ([]models.Video, error) {
				assert.Equal(t, int64(2), *userID)
				return []models.Video{sample}, nil
			})

		handler := NewListVideosHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/videos?user_id=2", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 200, rr.Code)
	})

	t.Run("empty result is a JSON array", func(t *testing.T) {
		mockSvc := NewMockVideoLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), gomock.Nil()).
			Return([]models.Video{}, nil)

		handler := NewListVideosHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/videos", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 200, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("invalid user_id", func(t *testing.T) {
		mockSvc := NewMockVideoLister(ctrl)

		handler := NewListVideosHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/videos?user_id=abc", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 400, rr.Code)
		assert.JSONEq(t, `{"error":"invalid user_id"}`, rr.Body.String())
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockVideoLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), gomock.Nil()).
			Return(nil, errors.New("malformed stored JSON"))

		handler := NewListVideosHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/videos", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 500, rr.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rr.Body.String())
	})
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sshuster/viral-video-whisperer-pro/internal/logger"
	"github.com/sshuster/viral-video-whisperer-pro/internal/models"
)

// VideoLister defines the interface that the video listing service must implement.
type VideoLister interface {
	List(ctx context.Context, userID *int64) ([]models.Video, error)
}

// VideoListErrorResponse represents an error response for video listing
// swagger:model VideoListErrorResponse
type VideoListErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// NewListVideosHandler returns an HTTP handler for listing videos.
// @Summary List videos
// @Description Returns all videos, optionally scoped to one user via the user_id query parameter
// @Tags videos
// @Produce json
// @Param user_id query int false "Filter by owning user id"
// @Success 200 {array} models.Video "Videos"
// @Failure 400 {object} handlers.VideoListErrorResponse "Invalid user_id"
// @Failure 500 {object} handlers.VideoListErrorResponse "Internal server error"
// @Router /videos [get]
func NewListVideosHandler(svc VideoLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var userID *int64
		if raw := r.URL.Query().Get("user_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(VideoListErrorResponse{
					Error: "invalid user_id",
				})
				return
			}
			userID = &id
		}

		videos, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(VideoListErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(videos)
	}
}

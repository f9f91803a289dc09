package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sshuster/viral-video-whisperer-pro/internal/logger"
	"github.com/sshuster/viral-video-whisperer-pro/internal/models"
	"github.com/sshuster/viral-video-whisperer-pro/internal/services"
)

// VideoCreator defines the interface that the video submission service must implement.
type VideoCreator interface {
	Create(ctx context.Context, userID int64, url, platform, description string) (*models.Video, error)
}

// CreateVideoRequest represents the JSON body for a video submission
// swagger:model CreateVideoRequest
type CreateVideoRequest struct {
	// Owning user id
	// required: true
	// example: 1
	UserID int64 `json:"user_id"`

	// Video URL
	// required: true
	// example: https://www.tiktok.com/@user/video/123
	URL string `json:"url"`

	// Platform the video was published on
	// required: true
	// example: tiktok
	Platform string `json:"platform"`

	// Optional description
	// example: my dance video
	Description string `json:"description"`
}

// CreateVideoErrorResponse represents an error response for video submission
// swagger:model CreateVideoErrorResponse
type CreateVideoErrorResponse struct {
	// Error message
	// example: User not found
	Error string `json:"error"`
}

// NewCreateVideoHandler returns an HTTP handler for video submission.
// @Summary Submit a video
// @Description Stores the submission with analyzer suggestions and metrics, stamped with the current time
// @Tags videos
// @Accept json
// @Produce json
// @Param createVideoRequest body handlers.CreateVideoRequest true "Video submission"
// @Success 201 {object} models.Video "Created video"
// @Failure 400 {object} handlers.CreateVideoErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.CreateVideoErrorResponse "User not found"
// @Failure 500 {object} handlers.CreateVideoErrorResponse "Internal server error"
// @Router /videos [post]
func NewCreateVideoHandler(svc VideoCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateVideoRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID <= 0 || req.URL == "" || req.Platform == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateVideoErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		video, err := svc.Create(r.Context(), req.UserID, req.URL, req.Platform, req.Description)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CreateVideoErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateVideoErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(video)
	}
}

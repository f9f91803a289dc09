package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sshuster/viral-video-whisperer-pro/internal/logger"
	"github.com/sshuster/viral-video-whisperer-pro/internal/models"
)

// AdminVideoLister defines the interface that the admin service must implement.
type AdminVideoLister interface {
	ListVideos(ctx context.Context) ([]models.AdminVideo, error)
}

// AdminVideoListErrorResponse represents an error response for the admin video listing
// swagger:model AdminVideoListErrorResponse
type AdminVideoListErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// NewAdminListVideosHandler returns an HTTP handler for the admin video listing.
// @Summary List all videos
// @Description Returns every video with the owning username and status field
// @Tags admin
// @Produce json
// @Success 200 {array} models.AdminVideo "Videos"
// @Failure 401 {object} handlers.AdminVideoListErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.AdminVideoListErrorResponse "Internal server error"
// @Router /admin/videos [get]
// @Security BearerAuth
func NewAdminListVideosHandler(svc AdminVideoLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videos, err := svc.ListVideos(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminVideoListErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(videos)
	}
}

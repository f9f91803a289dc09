package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sshuster/viral-video-whisperer-pro/internal/logger"
	"github.com/sshuster/viral-video-whisperer-pro/internal/services"
)

// VideoDeleter defines the interface that the video deletion service must implement.
type VideoDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// DeleteVideoResponse represents a successful deletion
// swagger:model DeleteVideoResponse
type DeleteVideoResponse struct {
	// Confirmation message
	// example: Video deleted successfully
	Message string `json:"message"`
}

// DeleteVideoErrorResponse represents an error response for video deletion
// swagger:model DeleteVideoErrorResponse
type DeleteVideoErrorResponse struct {
	// Error message
	// example: Video not found
	Error string `json:"error"`
}

// NewDeleteVideoHandler returns an HTTP handler for deleting a video.
// @Summary Delete a video
// @Tags videos
// @Produce json
// @Param id path int true "Video id"
// @Success 200 {object} handlers.DeleteVideoResponse "Deleted"
// @Failure 404 {object} handlers.DeleteVideoErrorResponse "Video not found"
// @Failure 500 {object} handlers.DeleteVideoErrorResponse "Internal server error"
// @Router /videos/{id} [delete]
func NewDeleteVideoHandler(svc VideoDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(DeleteVideoErrorResponse{
				Error: "Video not found",
			})
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrVideoNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DeleteVideoErrorResponse{
					Error: "Video not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DeleteVideoErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteVideoResponse{
			Message: "Video deleted successfully",
		})
	}
}

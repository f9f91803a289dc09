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

// AdminUserDeleter defines the interface that the admin service must implement.
type AdminUserDeleter interface {
	DeleteUser(ctx context.Context, id int64) error
}

// AdminDeleteUserResponse represents a successful user deletion
// swagger:model AdminDeleteUserResponse
type AdminDeleteUserResponse struct {
	// Confirmation message
	// example: User deleted successfully
	Message string `json:"message"`
}

// AdminDeleteUserErrorResponse represents an error response for user deletion
// swagger:model AdminDeleteUserErrorResponse
type AdminDeleteUserErrorResponse struct {
	// Error message
	// example: User not found
	Error string `json:"error"`
}

// NewAdminDeleteUserHandler returns an HTTP handler for deleting a user and
// that user's videos.
// @Summary Delete a user
// @Description Removes the user and all of that user's videos
// @Tags admin
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} handlers.AdminDeleteUserResponse "Deleted"
// @Failure 401 {object} handlers.AdminDeleteUserErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.AdminDeleteUserErrorResponse "User not found"
// @Failure 500 {object} handlers.AdminDeleteUserErrorResponse "Internal server error"
// @Router /admin/users/{id} [delete]
// @Security BearerAuth
func NewAdminDeleteUserHandler(svc AdminUserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(AdminDeleteUserErrorResponse{
				Error: "User not found",
			})
			return
		}

		if err := svc.DeleteUser(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(AdminDeleteUserErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AdminDeleteUserErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdminDeleteUserResponse{
			Message: "User deleted successfully",
		})
	}
}

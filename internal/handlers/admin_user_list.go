package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sshuster/viral-video-whisperer-pro/internal/logger"
	"github.com/sshuster/viral-video-whisperer-pro/internal/models"
)

// AdminUserLister defines the interface that the admin service must implement.
type AdminUserLister interface {
	ListUsers(ctx context.Context) ([]models.AdminUser, error)
}

// AdminUserListErrorResponse represents an error response for the admin user listing
// swagger:model AdminUserListErrorResponse
type AdminUserListErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// NewAdminListUsersHandler returns an HTTP handler for the admin user listing.
// @Summary List all users
// @Description Returns every user's public profile with video count and join date
// @Tags admin
// @Produce json
// @Success 200 {array} models.AdminUser "Users"
// @Failure 401 {object} handlers.AdminUserListErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.AdminUserListErrorResponse "Internal server error"
// @Router /admin/users [get]
// @Security BearerAuth
func NewAdminListUsersHandler(svc AdminUserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminUserListErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(users)
	}
}

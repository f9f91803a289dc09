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

func TestAdminListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockAdminUserLister(ctrl)
		mockSvc.EXPECT().
			ListUsers(gomock.Any()).
			Return([]models.AdminUser{
				{ID: 1, Username: "muser", Name: "Mock User", Role: "user", VideosSubmitted: 3, JoinDate: "2023-12-31T00:00:00Z"},
				{ID: 2, Username: "mvc", Name: "Admin User", Role: "admin", VideosSubmitted: 0, JoinDate: "2023-12-31T00:00:00Z"},
			}, nil)

		handler := NewAdminListUsersHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 200, rr.Code)

		var resp []models.AdminUser
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
		assert.Equal(t, int64(3), resp[0].VideosSubmitted)
		assert.Equal(t, "2023-12-31T00:00:00Z", resp[0].JoinDate)
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockAdminUserLister(ctrl)
		mockSvc.EXPECT().
			ListUsers(gomock.Any()).
			Return(nil, errors.New("database failure"))

		handler := NewAdminListUsersHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 500, rr.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rr.Body.String())
	})
}

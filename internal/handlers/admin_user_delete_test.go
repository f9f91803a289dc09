package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sshuster/viral-video-whisperer-pro/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAdminDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		path         string
		mockSetup    func(m *MockAdminUserDeleter)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			path: "/api/admin/users/1",
			mockSetup: func(m *MockAdminUserDeleter) {
				m.EXPECT().DeleteUser(gomock.Any(), int64(1)).Return(nil)
			},
			expectedCode: 200,
			expectedBody: `{"message":"User deleted successfully"}`,
		},
		{
			name: "not found",
			path: "/api/admin/users/42",
			mockSetup: func(m *MockAdminUserDeleter) {
				m.EXPECT().DeleteUser(gomock.Any(), int64(42)).Return(services.ErrUserNotFound)
			},
			expectedCode: 404,
			expectedBody: `{"error":"User not found"}`,
		},
		{
			name:         "non-numeric id",
			path:         "/api/admin/users/abc",
			expectedCode: 404,
			expectedBody: `{"error":"User not found"}`,
		},
		{
			name: "internal server error",
			path: "/api/admin/users/1",
			mockSetup: func(m *MockAdminUserDeleter) {
				m.EXPECT().DeleteUser(gomock.Any(), int64(1)).Return(errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAdminUserDeleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			r := chi.NewRouter()
			r.Delete("/api/admin/users/{id}", NewAdminDeleteUserHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

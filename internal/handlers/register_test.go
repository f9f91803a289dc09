package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sshuster/viral-video-whisperer-pro/internal/models"
	"github.com/sshuster/viral-video-whisperer-pro/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "success",
			body: `{"username":"john","password":"secret","name":"John Doe"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "secret", "John Doe").
					Return(&models.UserDB{
						ID:       3,
						Username: "john",
						Name:     "John Doe",
						Role:     "user",
					}, nil)
			},
			expectedCode: 201,
			expectedBody: map[string]any{
				"id":       float64(3),
				"username": "john",
				"name":     "John Doe",
				"role":     "user",
			},
		},
		{
			name: "username already exists",
			body: `{"username":"muser","password":"pass","name":"Someone"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "muser", "pass", "Someone").
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: 409,
			expectedBody: map[string]any{"error": "Username already exists"},
		},
		{
			name: "internal server error",
			body: `{"username":"bob","password":"pass","name":"Bob"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "pass", "Bob").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			body:         `{invalid json}`,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "invalid request body"},
		},
		{
			name:         "missing name",
			body:         `{"username":"bob","password":"pass"}`,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

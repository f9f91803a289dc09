package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sshuster/viral-video-whisperer-pro/internal/jwt"
	"github.com/sshuster/viral-video-whisperer-pro/internal/logger"
	"github.com/sshuster/viral-video-whisperer-pro/internal/models"
)

// Tokener defines the minimal token operations needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type authErrorResponse struct {
	Error string `json:"error"`
}

// AdminOnly returns a middleware that rejects requests without a valid JWT
// carrying the admin role.
func AdminOnly(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(authErrorResponse{Error: "Unauthorized"})
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(authErrorResponse{Error: "Unauthorized"})
				return
			}

			if claims.Role != models.RoleAdmin {
				logger.Log.Errorw("forbidden: admin role required", "user_id", claims.UserID, "role", claims.Role)
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(authErrorResponse{Error: "Forbidden"})
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"odr-lab/platform/internal/auth"
	"odr-lab/platform/internal/constants"
	"odr-lab/platform/internal/db/repositories"
	"odr-lab/platform/internal/logging"
	"odr-lab/platform/internal/models/dtos/responses"
)

// AuthMiddleware is the authentication guard. It verifies the bearer token,
// resolves the subject to a live account, and stores both the decoded claims
// and the hydrated user on the request context. Handlers downstream read the
// hydrated user, never the claims, so role changes take effect without
// re-issuing tokens.
func AuthMiddleware(jwtSecret string, userRepo *repositories.UserRepository) func(http.Handler) http.Handler {
	secret := []byte(jwtSecret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeError(w, http.StatusUnauthorized, constants.MsgAuthRequired)
				return
			}
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			claims := &auth.SessionClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				writeError(w, http.StatusUnauthorized, constants.MsgInvalidToken)
				return
			}

			user, err := userRepo.GetByID(r.Context(), claims.UserID)
			if err != nil {
				logging.Error("Auth guard user lookup failed", "user_id", claims.UserID, "error", err.Error())
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if user == nil {
				// stale token for a deleted account
				writeError(w, http.StatusUnauthorized, "User not found")
				return
			}

			ctx := auth.SetSessionClaims(r.Context(), claims)
			ctx = auth.SetCurrentUser(ctx, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeError(w http.ResponseWriter, code int, message string) {
	resp := responses.APIResponse[any]{
		Status:    "error",
		Timestamp: time.Now().UTC(),
		Error:     message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}

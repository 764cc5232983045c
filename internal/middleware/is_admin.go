package middleware

import (
	"net/http"

	"odr-lab/platform/internal/auth"
	"odr-lab/platform/internal/constants"
)

// IsAdminMiddleware gates admin routes. Must run after AuthMiddleware; the
// role is read from the hydrated user, not the token claims.
func IsAdminMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := auth.GetCurrentUser(r.Context())
			if user == nil {
				writeError(w, http.StatusUnauthorized, constants.MsgAuthRequired)
				return
			}
			if user.UserRole != constants.RoleAdmin {
				writeError(w, http.StatusForbidden, constants.MsgAdminRequired)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

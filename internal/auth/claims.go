package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the signed claim bundle issued at login. Role and email
// here reflect the account at issuance time; handlers must read the hydrated
// user from the request context instead of trusting these.
type SessionClaims struct {
	UserID   string `json:"id"`
	Email    string `json:"email"`
	UserRole string `json:"userRole"`
	jwt.RegisteredClaims
}

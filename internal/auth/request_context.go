package auth

import (
	"context"

	gormModels "odr-lab/platform/internal/models/gorm"
)

type contextKey string

var (
	sessionClaimsKey contextKey = "session_claims"
	currentUserKey   contextKey = "current_user"
)

func SetSessionClaims(ctx context.Context, claims *SessionClaims) context.Context {
	return context.WithValue(ctx, sessionClaimsKey, claims)
}

func GetSessionClaims(ctx context.Context) *SessionClaims {
	val := ctx.Value(sessionClaimsKey)
	if claims, ok := val.(*SessionClaims); ok {
		return claims
	}
	return nil
}

// SetCurrentUser stores the store-hydrated account for the request. This is
// the only producer; handlers never build it themselves.
func SetCurrentUser(ctx context.Context, user *gormModels.User) context.Context {
	return context.WithValue(ctx, currentUserKey, user)
}

// GetCurrentUser returns the hydrated account, or nil outside the guard.
func GetCurrentUser(ctx context.Context) *gormModels.User {
	val := ctx.Value(currentUserKey)
	if user, ok := val.(*gormModels.User); ok {
		return user
	}
	return nil
}

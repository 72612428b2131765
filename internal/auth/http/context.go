// Package http provides HTTP middleware and handlers for authentication.
package http

import (
	"context"
)

// userIDKey is a context key type for storing the authenticated principal id.
type userIDKey struct{}

// WithUserID stores the authenticated principal id in the context.
// This is typically called by the authentication middleware after successful token validation.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserID retrieves the authenticated principal id from the context.
// Returns (userID, true) if a principal is present, or (0, false) if the
// request is anonymous.
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}

package middleware

import (
	"context"

	"github.com/marshad7/taskflow/internal/domain"
)

type contextKey string

const userContextKey contextKey = "user_id"

// WithUser injects the authenticated user id into the context.
func WithUser(ctx context.Context, id domain.UserID) context.Context {
	return context.WithValue(ctx, userContextKey, id)
}

// UserFromContext returns the authenticated user id, if any.
func UserFromContext(ctx context.Context) (domain.UserID, bool) {
	v := ctx.Value(userContextKey)
	if v == nil {
		return domain.UserID{}, false
	}
	id, ok := v.(domain.UserID)
	return id, ok
}

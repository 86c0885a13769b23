package rest

import (
	"context"

	"github.com/gin-gonic/gin"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// WithUserID returns ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the id stored by the auth middleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

func userID(c *gin.Context) string {
	return c.GetString(string(userIDKey))
}

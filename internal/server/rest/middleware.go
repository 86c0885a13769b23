package rest

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/hotelbook/internal/common"
	"github.com/dmitrijs2005/hotelbook/internal/logging"
	"github.com/gin-gonic/gin"
)

// requireAuth rejects the request with 401 unless the auth cookie holds a
// valid token. The user id is then available through userID(c) and
// UserIDFromContext(c.Request.Context()).
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(common.AuthCookieName)
		if err != nil || token == "" {
			abortUnauthorized(c)
			return
		}

		id, err := s.users.ValidateToken(token)
		if err != nil {
			s.logger.Debug(c.Request.Context(), "token rejected", "error", err.Error())
			abortUnauthorized(c)
			return
		}

		c.Set(string(userIDKey), id)
		c.Request = c.Request.WithContext(WithUserID(c.Request.Context(), id))
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
}

func requestLogger(l logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start).String(),
			"ip", c.ClientIP(),
		}
		if id := userID(c); id != "" {
			args = append(args, "user_id", id)
		}

		switch {
		case status >= http.StatusInternalServerError:
			l.Error(c.Request.Context(), "request", args...)
		case status >= http.StatusBadRequest:
			l.Warn(c.Request.Context(), "request", args...)
		default:
			l.Info(c.Request.Context(), "request", args...)
		}
	}
}

package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/hotelbook/internal/common"
	"github.com/gin-gonic/gin"
)

const msgInternal = "Internal Server Error"

// respondError maps service errors onto status codes. Anything not a known
// client error is logged and answered with a bare 500.
func (s *Server) respondError(c *gin.Context, err error, internalMsg string) {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"message": ve.Fields})
	case errors.Is(err, common.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
	case errors.Is(err, common.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Credentials"})
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
	default:
		s.logger.Error(c.Request.Context(), "request failed", "path", c.Request.URL.Path, "error", err.Error())
		if internalMsg == "" {
			internalMsg = msgInternal
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": internalMsg})
	}
}

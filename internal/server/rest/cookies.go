package rest

import (
	"net/http"

	"github.com/dmitrijs2005/hotelbook/internal/common"
	"github.com/gin-gonic/gin"
)

// setAuthCookie stores token in the HttpOnly auth cookie for the token's
// lifetime. Production cookies are Secure and SameSite=None so a frontend on
// another origin can send them.
func (s *Server) setAuthCookie(c *gin.Context, token string) {
	maxAge := int(s.users.TokenValidity().Seconds())
	s.writeAuthCookie(c, token, maxAge)
}

// clearAuthCookie expires the auth cookie in the browser.
func (s *Server) clearAuthCookie(c *gin.Context) {
	s.writeAuthCookie(c, "", -1)
}

func (s *Server) writeAuthCookie(c *gin.Context, value string, maxAge int) {
	if s.config.Production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(common.AuthCookieName, value, maxAge, "/", "", s.config.Production, true)
}

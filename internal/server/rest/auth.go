package rest

import (
	"net/http"

	"github.com/dmitrijs2005/hotelbook/internal/common"
	"github.com/dmitrijs2005/hotelbook/internal/server/services"
	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	FirstName string `json:"firstName" binding:"required" msg:"First name is required"`
	LastName  string `json:"lastName" binding:"required" msg:"Last name is required"`
	Email     string `json:"email" binding:"required,email" msg:"Email is required"`
	Password  string `json:"password" binding:"required,min=6" msg:"Password with 6 or more characters required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email" msg:"Email is required"`
	Password string `json:"password" binding:"required,min=6" msg:"Password with 6 or more characters required"`
}

// bindJSON decodes and validates the body into req. On failure it writes the
// 400 response and returns false.
func (s *Server) bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	if ve, ok := bindingErrors(req, err); ok {
		s.respondError(c, ve, "")
		return false
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": []common.FieldError{{Path: "body", Msg: "Request body must be valid JSON"}}})
	return false
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if !s.bindJSON(c, &req) {
		return
	}

	sess, err := s.users.Register(c.Request.Context(), services.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		s.respondError(c, err, "")
		return
	}

	s.setAuthCookie(c, sess.Token)
	s.logger.Info(c.Request.Context(), "Registered", "user_id", sess.User.ID)
	c.JSON(http.StatusOK, gin.H{"message": "User registered OK"})
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if !s.bindJSON(c, &req) {
		return
	}

	sess, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.respondError(c, err, "Something went wrong")
		return
	}

	s.setAuthCookie(c, sess.Token)
	c.JSON(http.StatusOK, gin.H{"userId": sess.User.ID, "token": sess.Token})
}

func (s *Server) validateToken(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"userId": userID(c)})
}

// logout only clears the browser cookie. The token itself stays valid until
// it expires.
func (s *Server) logout(c *gin.Context) {
	s.clearAuthCookie(c)
	c.Status(http.StatusOK)
}

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spangleswebx/backoffice/internal/authorization"
	userdomain "github.com/spangleswebx/backoffice/internal/user/domain"
)

func (s *Server) registerUserRoutes() {
	users := s.engine.Group("/users",
		s.AuthRequired(), s.requireFeature(authorization.ObjectUsers))
	{
		users.GET("", s.listUsers)
		users.POST("", s.createUser)
		users.DELETE("/:id", s.deleteUser)
	}

	// Recovery runs before login, so no session gate here.
	forgot := s.engine.Group("/users/forgot-password")
	{
		forgot.POST("/send-otp", s.sendResetOTP)
		forgot.POST("/verify-otp", s.verifyResetOTP)
		forgot.POST("/reset", s.resetPassword)
	}
}

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.userSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type createUserRequest struct {
	Name     string            `json:"name" binding:"required"`
	Phone    string            `json:"phone"`
	Username string            `json:"username" binding:"required"`
	Email    string            `json:"email"`
	Password string            `json:"password" binding:"required"`
	Role     string            `json:"role"`
	Access   userdomain.Access `json:"access"`
}

func (s *Server) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	created, err := s.userSvc.Create(c.Request.Context(), userdomain.User{
		Name:     req.Name,
		Phone:    req.Phone,
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
		Access:   req.Access,
	}, req.Password)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) deleteUser(c *gin.Context) {
	if err := s.userSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) sendResetOTP(c *gin.Context) {
	if err := s.userSvc.IssueResetChallenge(c.Request.Context()); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "otp sent"})
}

type verifyOTPRequest struct {
	OTP string `json:"otp" binding:"required"`
}

func (s *Server) verifyResetOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if err := s.userSvc.VerifyResetChallenge(c.Request.Context(), req.OTP); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "otp verified"})
}

type resetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required"`
}

func (s *Server) resetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if err := s.userSvc.ResetPassword(c.Request.Context(), req.NewPassword); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "password changed"})
}

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) registerAuthRoutes() {
	s.engine.POST("/login", s.login)
	s.engine.POST("/logout", s.logout)
	s.engine.GET("/me", s.AuthRequired(), s.me)
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	user, err := s.userSvc.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	session := s.sessions.Create(user.ID, user.Username, user.Role)
	c.SetCookie(sessionCookie, session.Token, int(s.cfg.SessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       user.ID.String(),
			"name":     user.Name,
			"username": user.Username,
			"role":     user.Role,
			"access":   user.Access,
		},
	})
}

func (s *Server) logout(c *gin.Context) {
	if token, err := c.Cookie(sessionCookie); err == nil && token != "" {
		s.sessions.Revoke(token)
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) me(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":       session.UserID.String(),
		"username": session.Username,
		"role":     session.Role,
	})
}

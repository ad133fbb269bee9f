package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"cnb.cool/zhiqiangwang/pkg/logx"

	"github.com/Sudharson1234/emotionv2/internal/middleware"
	"github.com/Sudharson1234/emotionv2/internal/service"
)

// ==================== 账号与会话 ====================

type signupRequest struct {
	Name            string `json:"name" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

func (s *HTTPGinServer) handleSignup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.error(c, http.StatusBadRequest, "Invalid signup request: "+err.Error())
		return
	}

	user, err := s.deps.Users.Signup(strings.TrimSpace(req.Name), strings.TrimSpace(req.Phone), strings.ToLower(strings.TrimSpace(req.Email)), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) || errors.Is(err, service.ErrPhoneTaken) {
			s.error(c, http.StatusConflict, err.Error())
			return
		}
		logx.Error("Signup failed: %v", err)
		s.error(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	s.success(c, gin.H{
		"user_id": user.ID,
		"name":    user.Name,
		"email":   user.Email,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *HTTPGinServer) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.error(c, http.StatusBadRequest, "Invalid login request: "+err.Error())
		return
	}

	user, err := s.deps.Users.Authenticate(strings.ToLower(strings.TrimSpace(req.Email)), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			s.error(c, http.StatusUnauthorized, err.Error())
			return
		}
		logx.Error("Login failed: %v", err)
		s.error(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	session, err := s.deps.Sessions.Create(c.Request.Context(), user, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		logx.Error("Session creation failed: %v", err)
		s.error(c, http.StatusInternalServerError, "Failed to create session")
		return
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetCookie(middleware.SessionCookieName, session.Token, maxAge, "/", "", false, true)

	s.success(c, gin.H{
		"session_token": session.Token,
		"expires_at":    session.ExpiresAt,
		"user": gin.H{
			"user_id": user.ID,
			"name":    user.Name,
			"email":   user.Email,
		},
	})
}

func (s *HTTPGinServer) handleLogout(c *gin.Context) {
	token := c.GetString(middleware.ContextSessionToken)
	if err := s.deps.Sessions.Deactivate(c.Request.Context(), token); err != nil {
		logx.Error("Logout failed: %v", err)
		s.error(c, http.StatusInternalServerError, "Failed to log out")
		return
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	s.success(c, gin.H{"logged_out": true})
}

func (s *HTTPGinServer) handleSessionStatus(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		s.error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := s.deps.Users.GetUserByID(userID)
	if err != nil || user == nil {
		s.error(c, http.StatusUnauthorized, "User not found")
		return
	}

	s.success(c, gin.H{
		"active": true,
		"user": gin.H{
			"user_id":       user.ID,
			"name":          user.Name,
			"email":         user.Email,
			"last_login_at": user.LastLoginAt,
		},
	})
}

func (s *HTTPGinServer) handleActiveSessions(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		s.error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	sessions, err := s.deps.Sessions.ListActive(userID)
	if err != nil {
		logx.Error("Failed to list sessions for user %d: %v", userID, err)
		s.error(c, http.StatusInternalServerError, "Failed to list sessions")
		return
	}

	items := make([]gin.H, 0, len(sessions))
	current := c.GetString(middleware.ContextSessionToken)
	for _, session := range sessions {
		items = append(items, gin.H{
			"ip_address":       session.IPAddress,
			"user_agent":       session.UserAgent,
			"last_activity_at": session.LastActivityAt,
			"expires_at":       session.ExpiresAt,
			"current":          session.Token == current,
		})
	}

	s.success(c, gin.H{
		"total":    len(items),
		"sessions": items,
	})
}

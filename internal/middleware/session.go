package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cnb.cool/zhiqiangwang/pkg/logx"

	"github.com/Sudharson1234/emotionv2/internal/model"
	"github.com/Sudharson1234/emotionv2/internal/service"
)

const (
	// ContextUserID 会话校验通过后写入请求上下文的用户 ID 键
	ContextUserID = "user_id"
	// ContextSessionToken 请求上下文里的会话令牌键
	ContextSessionToken = "session_token"

	// SessionCookieName 浏览器端携带令牌的 Cookie 名
	SessionCookieName = "session_token"
)

// ExtractToken 从请求中取会话令牌,优先 Authorization 头,其次 Cookie
func ExtractToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	if token, err := c.Cookie(SessionCookieName); err == nil {
		return token
	}
	return ""
}

// SessionAuth 会话鉴权中间件
// 过期会话在请求时刻发现并注销,返回 401 要求重新登录
func SessionAuth(sessions *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.Response{
				Code:    http.StatusUnauthorized,
				Message: "Authentication required. Please log in.",
			})
			return
		}

		session, err := sessions.Validate(c.Request.Context(), token)
		if err != nil {
			message := "Invalid session. Please log in again."
			if errors.Is(err, service.ErrSessionExpired) {
				message = "Session expired. Please log in again."
			} else if !errors.Is(err, service.ErrSessionNotFound) {
				logx.Error("Session validation failed: %v", err)
				message = "Failed to validate session."
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.Response{
				Code:    http.StatusUnauthorized,
				Message: message,
			})
			return
		}

		// 活动时间刷新失败不影响本次请求
		if err := sessions.Touch(token); err != nil {
			logx.Warn("Failed to touch session %s: %v", token, err)
		}

		c.Set(ContextUserID, session.UserID)
		c.Set(ContextSessionToken, token)
		c.Next()
	}
}

// CurrentUserID 从请求上下文取已鉴权的用户 ID
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

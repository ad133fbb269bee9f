package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cnb.cool/zhiqiangwang/pkg/logx"

	"github.com/Sudharson1234/emotionv2/internal/middleware"
	"github.com/Sudharson1234/emotionv2/internal/report"
)

// ==================== 报表导出 ====================

func (s *HTTPGinServer) handleExportChatReport(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		s.error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	period, window := statsWindow(c)
	chats, err := s.deps.Chats.GetUserChats(userID, window)
	if err != nil {
		logx.Error("Failed to load chats for export, user %d: %v", userID, err)
		s.error(c, http.StatusInternalServerError, "Failed to export chat report")
		return
	}

	username := "Anonymous"
	if user, err := s.deps.Users.GetUserByID(userID); err == nil && user != nil {
		username = user.Name
	}

	rows := make([]report.ChatRow, 0, len(chats))
	for _, chat := range chats {
		rows = append(rows, report.ChatRow{
			Timestamp:   chat.CreatedAt,
			Username:    username,
			UserMessage: chat.UserMessage,
			AIResponse:  chat.AIResponse,
			Emotion:     chat.DetectedEmotion,
			Score:       chat.EmotionScore,
		})
	}

	domainName := s.config.Export.DomainName
	workbook, err := report.BuildChatReport(rows, domainName)
	if err != nil {
		logx.Error("Failed to build chat report for user %d: %v", userID, err)
		s.error(c, http.StatusInternalServerError, "Failed to build chat report")
		return
	}
	defer workbook.Close()

	filename := report.Filename(domainName, time.Now())
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("X-Report-Period", period)

	if _, err := workbook.WriteTo(c.Writer); err != nil {
		logx.Error("Failed to stream chat report for user %d: %v", userID, err)
	}
}

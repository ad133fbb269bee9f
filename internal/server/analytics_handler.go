package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cnb.cool/zhiqiangwang/pkg/logx"

	"github.com/Sudharson1234/emotionv2/internal/middleware"
	"github.com/Sudharson1234/emotionv2/internal/model"
	"github.com/Sudharson1234/emotionv2/internal/service"
)

// ==================== 统计分析 ====================

// statsWindow 把 period 查询参数换算成时间窗,窗口两端都含
func statsWindow(c *gin.Context) (string, model.TimeRange) {
	period := c.DefaultQuery("period", "all")
	now := time.Now()
	return period, model.TimeRange{
		Start: service.PeriodStart(period, now),
		End:   now,
	}
}

func (s *HTTPGinServer) handleChatStats(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		s.error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	period, window := statsWindow(c)
	stats, err := s.deps.Analytics.UserChatStats(userID, window)
	if err != nil {
		logx.Error("Failed to build chat stats for user %d: %v", userID, err)
		s.error(c, http.StatusInternalServerError, "Failed to build chat statistics")
		return
	}

	s.success(c, gin.H{
		"period": period,
		"stats":  stats,
	})
}

func (s *HTTPGinServer) handleGlobalChatStats(c *gin.Context) {
	period, window := statsWindow(c)
	stats, err := s.deps.Analytics.GlobalChatStats(window)
	if err != nil {
		logx.Error("Failed to build global chat stats: %v", err)
		s.error(c, http.StatusInternalServerError, "Failed to build global chat statistics")
		return
	}

	s.success(c, gin.H{
		"period": period,
		"stats":  stats,
	})
}

func (s *HTTPGinServer) handleAnalyticsReport(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		s.error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	period, window := statsWindow(c)

	userStats, err := s.deps.Analytics.UserChatStats(userID, window)
	if err != nil {
		logx.Error("Failed to build analytics report for user %d: %v", userID, err)
		s.error(c, http.StatusInternalServerError, "Failed to build analytics report")
		return
	}

	globalStats, err := s.deps.Analytics.GlobalChatStats(window)
	if err != nil {
		logx.Error("Failed to build global section of analytics report: %v", err)
		s.error(c, http.StatusInternalServerError, "Failed to build analytics report")
		return
	}

	s.success(c, gin.H{
		"period":       period,
		"generated_at": time.Now(),
		"user_stats":   userStats,
		"global_stats": globalStats,
	})
}

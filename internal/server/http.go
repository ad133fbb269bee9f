package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"cnb.cool/zhiqiangwang/pkg/logx"
	"github.com/gin-gonic/gin"

	"github.com/Sudharson1234/emotionv2/internal/config"
	"github.com/Sudharson1234/emotionv2/internal/database"
	"github.com/Sudharson1234/emotionv2/internal/emotion"
	"github.com/Sudharson1234/emotionv2/internal/middleware"
	"github.com/Sudharson1234/emotionv2/internal/model"
	"github.com/Sudharson1234/emotionv2/internal/service"
	"github.com/Sudharson1234/emotionv2/internal/translate"
	"github.com/Sudharson1234/emotionv2/internal/vision"
)

// Dependencies 服务器依赖的领域组件,由启动命令组装后注入
type Dependencies struct {
	Users     *service.UserService
	Sessions  *service.SessionService
	Chats     *service.ChatService
	Analytics *service.AnalyticsService

	Detector   *emotion.Detector
	Responder  *emotion.Responder
	Translator *translate.Service

	FaceAnalyzer  vision.Analyzer
	VideoAnalyzer *vision.VideoAnalyzer
}

// HTTPGinServer 基于 Gin 的 HTTP 服务器
type HTTPGinServer struct {
	config *config.Config
	engine *gin.Engine
	server *http.Server
	deps   Dependencies
}

// NewHTTPGinServer 创建基于 Gin 的 HTTP 服务器
func NewHTTPGinServer(cfg *config.Config, deps Dependencies) *HTTPGinServer {
	// 设置 Gin 模式
	if cfg.Server.HTTP.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	s := &HTTPGinServer{
		config: cfg,
		engine: engine,
		deps:   deps,
	}

	// 注册中间件
	s.registerMiddlewares()

	// 注册路由
	s.registerRoutes()

	return s
}

// Engine 暴露底层引擎,供测试直接发请求
func (s *HTTPGinServer) Engine() *gin.Engine {
	return s.engine
}

// registerMiddlewares 注册中间件
func (s *HTTPGinServer) registerMiddlewares() {
	// 恢复中间件,panic 统一转 JSON 500
	s.engine.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		logx.Error("Panic recovered: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.Response{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}))

	// 自定义日志中间件
	s.engine.Use(s.loggingMiddleware())

	// CORS 中间件
	s.engine.Use(s.corsMiddleware())
}

// loggingMiddleware 自定义日志中间件
func (s *HTTPGinServer) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		logx.Info("HTTP request, method %s, path %s, status %d, duration %s, remote_addr %s",
			method, path, status, duration, c.ClientIP())
	}
}

// corsMiddleware CORS 中间件
func (s *HTTPGinServer) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// registerRoutes 注册路由
func (s *HTTPGinServer) registerRoutes() {
	// 健康检查和账号入口不走会话鉴权
	s.engine.GET("/api/health", s.handleHealth)
	s.engine.POST("/signup", s.handleSignup)
	s.engine.POST("/login", s.handleLogin)

	// 纯推理接口对匿名开放,只有触达持久化和会话的路径要求登录
	s.engine.POST("/detect_text_emotion", s.handleDetectTextEmotion)
	s.engine.POST("/multilang_text", s.handleMultilangText)
	s.engine.POST("/image_detection", s.handleImageDetection)
	s.engine.POST("/video_detection", s.handleVideoDetection)
	s.engine.POST("/detect_live_emotion", s.handleDetectLiveEmotion)

	auth := s.engine.Group("/", middleware.SessionAuth(s.deps.Sessions))
	{
		// 会话管理
		auth.POST("/logout", s.handleLogout)
		auth.GET("/session_status", s.handleSessionStatus)
		auth.GET("/active_sessions", s.handleActiveSessions)

		api := auth.Group("/api")
		{
			// 对话
			api.POST("/chat", s.handleChat)
			api.GET("/chat-history", s.handleChatHistory)
			api.POST("/global-chat", s.handleGlobalChatSend)
			api.GET("/global-chat-history", s.handleGlobalChatHistory)
			api.POST("/face-emotion-response", s.handleFaceEmotionResponse)

			// 统计与导出
			api.GET("/chat-stats", s.handleChatStats)
			api.GET("/global-chat-stats", s.handleGlobalChatStats)
			api.GET("/analytics-report", s.handleAnalyticsReport)
			api.GET("/export-chat-report", s.handleExportChatReport)
		}
	}
}

// Start 启动 HTTP 服务器
func (s *HTTPGinServer) Start() error {
	addr := fmt.Sprintf("0.0.0.0:%d", s.config.Server.HTTP.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	logx.Info("🛜 Starting HTTP Server (Gin), Addr %s", addr)
	return s.server.ListenAndServe()
}

// Stop 停止 HTTP 服务器
func (s *HTTPGinServer) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// success 返回成功响应
func (s *HTTPGinServer) success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, model.Response{
		Code:    200,
		Message: "Success",
		Data:    data,
	})
}

// error 返回错误响应
func (s *HTTPGinServer) error(c *gin.Context, code int, message string) {
	c.JSON(code, model.Response{
		Code:    code,
		Message: message,
	})
}

// failure 返回带 success 标记的错误响应,用于对外承诺该标记的接口
func (s *HTTPGinServer) failure(c *gin.Context, code int, message string) {
	c.JSON(code, model.Response{
		Code:    code,
		Message: message,
		Data:    gin.H{"success": false},
	})
}

// ==================== 健康检查 ====================

func (s *HTTPGinServer) handleHealth(c *gin.Context) {
	if err := database.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, model.Response{
			Code:    http.StatusServiceUnavailable,
			Message: "Service degraded",
			Data: gin.H{
				"status":   "degraded",
				"database": err.Error(),
			},
		})
		return
	}

	s.success(c, gin.H{
		"status":      "healthy",
		"database":    "ok",
		"llm_enabled": s.config.LLM.Enabled,
	})
}

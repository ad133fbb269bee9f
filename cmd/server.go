package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cnb.cool/zhiqiangwang/pkg/logx"
	"github.com/spf13/cobra"

	"github.com/Sudharson1234/emotionv2/internal/cache"
	"github.com/Sudharson1234/emotionv2/internal/database"
	"github.com/Sudharson1234/emotionv2/internal/emotion"
	"github.com/Sudharson1234/emotionv2/internal/llm"
	"github.com/Sudharson1234/emotionv2/internal/server"
	"github.com/Sudharson1234/emotionv2/internal/service"
	"github.com/Sudharson1234/emotionv2/internal/translate"
	"github.com/Sudharson1234/emotionv2/internal/vision"
)

// serverCmd 启动 HTTP 服务
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "启动 HTTP 服务",
	Long:  `启动 EmotiChat 的 HTTP 服务,提供账号、聊天、情绪识别和统计接口。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 数据库初始化与迁移
		if cfg.Database.Path != "" {
			os.Setenv("EMOTICHAT_DB_PATH", cfg.Database.Path)
		}
		db := database.GetDB()
		if err := database.AutoMigrate(db); err != nil {
			return err
		}

		deps := buildDependencies()

		httpServer := server.NewHTTPGinServer(cfg, deps)

		// 优雅退出
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		errCh := make(chan error, 1)
		go func() {
			errCh <- httpServer.Start()
		}()

		select {
		case err := <-errCh:
			return err
		case sig := <-quit:
			logx.Info("Received signal %s, shutting down", sig)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Stop(ctx); err != nil {
			logx.Error("Graceful shutdown failed: %v", err)
		}
		return database.Close()
	},
}

// buildDependencies 按配置组装领域组件
// 可选组件(远程模型、翻译、缓存、视觉)缺席时服务降级运行
func buildDependencies() server.Dependencies {
	var remote emotion.Completer
	if cfg.LLM.Enabled && cfg.LLM.APIKey != "" {
		remote = llm.NewClient(&llm.Config{
			Model:   cfg.LLM.Model,
			APIKey:  cfg.LLM.APIKey,
			BaseURL: cfg.LLM.BaseURL,
		})
		logx.Info("✅ Remote LLM enabled, model %s", cfg.LLM.Model)
	} else {
		logx.Warn("Remote LLM disabled, using local classifier only")
	}

	var translator *translate.Translator
	if cfg.Translate.Enabled {
		translator = translate.NewTranslator(cfg.Translate.Endpoint, time.Duration(cfg.Translate.TimeoutSeconds)*time.Second)
	}

	var sessionCache *cache.SessionCache
	if cfg.Cache.Enabled {
		var err error
		sessionCache, err = cache.NewSessionCache(cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB, time.Duration(cfg.Cache.TTL)*time.Second)
		if err != nil {
			logx.Warn("Redis unavailable, sessions served from database only: %v", err)
			sessionCache = nil
		} else {
			logx.Info("✅ Session cache enabled, addr %s", cfg.Cache.Addr)
		}
	}

	var faceAnalyzer vision.Analyzer
	var videoAnalyzer *vision.VideoAnalyzer
	if cfg.Vision.Enabled {
		client := vision.NewClient(cfg.Vision.BaseURL, time.Duration(cfg.Vision.TimeoutSeconds)*time.Second)
		faceAnalyzer = client
		videoAnalyzer = vision.NewVideoAnalyzer(client, vision.NewFrameExtractor(cfg.Vision.FFmpegPath), cfg.Vision.FrameStride)
		logx.Info("✅ Face analysis enabled, backend %s", cfg.Vision.BaseURL)
	}

	chats := service.NewChatService()
	return server.Dependencies{
		Users:         service.NewUserService(),
		Sessions:      service.NewSessionService(sessionCache, time.Duration(cfg.Session.TimeoutHours)*time.Hour),
		Chats:         chats,
		Analytics:     service.NewAnalyticsService(chats),
		Detector:      emotion.NewDetector(remote, emotion.NewLexiconClassifier()),
		Responder:     emotion.NewResponder(remote),
		Translator:    translate.NewService(translator, cfg.Translate.Enabled),
		FaceAnalyzer:  faceAnalyzer,
		VideoAnalyzer: videoAnalyzer,
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

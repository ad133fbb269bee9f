package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Sudharson1234/emotionv2/internal/database"
	"github.com/Sudharson1234/emotionv2/internal/model"
)

func setupServiceDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get raw connection: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	database.SetDB(db)
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
}

// 时间窗两端都是闭区间:落在边界上的记录恰好被计一次
func TestGetUserChatsWindowBoundaries(t *testing.T) {
	setupServiceDB(t)
	chats := NewChatService()

	start := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	rows := []struct {
		createdAt time.Time
		emotion   string
	}{
		{start.Add(-time.Second), "anger"}, // 窗口前
		{start, "joy"},                     // 下边界
		{start.Add(30 * time.Minute), "sadness"},
		{end, "fear"},                 // 上边界
		{end.Add(time.Second), "joy"}, // 窗口后
	}
	for _, row := range rows {
		chats.SaveChat(&model.Chat{
			CreatedAt:       row.createdAt,
			UserID:          1,
			UserMessage:     "message",
			AIResponse:      "reply",
			DetectedEmotion: row.emotion,
			EmotionScore:    0.8,
		})
	}

	window := model.TimeRange{Start: start, End: end}
	got, err := chats.GetUserChats(1, window)
	if err != nil {
		t.Fatalf("failed to load chats: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 chats in window, got %d", len(got))
	}
	if got[0].DetectedEmotion != "joy" || got[2].DetectedEmotion != "fear" {
		t.Fatalf("boundary rows missing, got %q and %q", got[0].DetectedEmotion, got[2].DetectedEmotion)
	}

	// 聚合路径对同一窗口计数一致
	analytics := NewAnalyticsService(chats)
	stats, err := analytics.UserChatStats(1, window)
	if err != nil {
		t.Fatalf("failed to build stats: %v", err)
	}
	if stats.TotalMessages != 3 {
		t.Fatalf("expected 3 messages counted, got %d", stats.TotalMessages)
	}
}

func TestGetUserChatsOpenUpperBound(t *testing.T) {
	setupServiceDB(t)
	chats := NewChatService()

	start := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		chats.SaveChat(&model.Chat{
			CreatedAt:       start.Add(time.Duration(i) * time.Hour),
			UserID:          7,
			UserMessage:     "message",
			AIResponse:      "reply",
			DetectedEmotion: "joy",
			EmotionScore:    0.9,
		})
	}

	// 上界为零值表示不限
	got, err := chats.GetUserChats(7, model.TimeRange{Start: start.Add(30 * time.Minute)})
	if err != nil {
		t.Fatalf("failed to load chats: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 chats with open upper bound, got %d", len(got))
	}
}

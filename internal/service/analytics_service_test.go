package service

import (
	"testing"
	"time"

	"github.com/Sudharson1234/emotionv2/internal/model"
)

func TestSummarizeChatsNormalizesLabels(t *testing.T) {
	chats := []model.Chat{
		{DetectedEmotion: "joy"},
		{DetectedEmotion: "happy"}, // 同义词归一到 joy
		{DetectedEmotion: "sadness"},
		{DetectedEmotion: "perplexed"}, // 归不进枚举,进 unknown 桶
	}

	stats := SummarizeChats(chats)
	if stats.TotalMessages != 4 {
		t.Fatalf("expected 4 messages, got %d", stats.TotalMessages)
	}
	if stats.DominantEmotion != "joy" {
		t.Fatalf("expected joy dominant, got %s", stats.DominantEmotion)
	}

	counts := make(map[string]int)
	for _, item := range stats.Breakdown {
		counts[item.Emotion] = item.Count
	}
	if counts["joy"] != 2 {
		t.Fatalf("expected joy count 2, got %d", counts["joy"])
	}
	if counts["unknown"] != 1 {
		t.Fatalf("expected unknown bucket count 1, got %d", counts["unknown"])
	}
}

func TestSummarizeChatsEmpty(t *testing.T) {
	stats := SummarizeChats(nil)
	if stats.TotalMessages != 0 {
		t.Fatalf("expected 0 messages, got %d", stats.TotalMessages)
	}
	if stats.DominantEmotion != "" {
		t.Fatalf("expected no dominant emotion, got %s", stats.DominantEmotion)
	}
	if len(stats.Breakdown) != 0 {
		t.Fatalf("expected empty breakdown, got %v", stats.Breakdown)
	}
}

func TestSummarizeGlobalChatsParticipants(t *testing.T) {
	score := 0.8
	messages := []model.GlobalChat{
		{UserID: 1, DetectedTextEmotion: "joy", EmotionScore: &score},
		{UserID: 1, DetectedTextEmotion: "anger", EmotionScore: &score},
		{UserID: 2, DetectedTextEmotion: "joy", EmotionScore: &score},
		{UserID: 3, IsAIResponse: true}, // AI 回复不计入参与者
		{UserID: 4},                     // 无情绪标注的消息计入总数但不进分布
	}

	stats := SummarizeGlobalChats(messages)
	if stats.TotalMessages != 5 {
		t.Fatalf("expected 5 messages, got %d", stats.TotalMessages)
	}
	if stats.AIResponses != 1 {
		t.Fatalf("expected 1 AI response, got %d", stats.AIResponses)
	}
	if stats.UniqueParticipants != 3 {
		t.Fatalf("expected 3 unique participants, got %d", stats.UniqueParticipants)
	}
	if stats.DominantEmotion != "joy" {
		t.Fatalf("expected joy dominant, got %s", stats.DominantEmotion)
	}
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	if got := PeriodStart("day", now); !got.Equal(now.AddDate(0, 0, -1)) {
		t.Fatalf("unexpected day window start: %v", got)
	}
	if got := PeriodStart("week", now); !got.Equal(now.AddDate(0, 0, -7)) {
		t.Fatalf("unexpected week window start: %v", got)
	}
	if got := PeriodStart("month", now); !got.Equal(now.AddDate(0, -1, 0)) {
		t.Fatalf("unexpected month window start: %v", got)
	}
	if got := PeriodStart("all", now); !got.IsZero() {
		t.Fatalf("expected zero start for all, got %v", got)
	}
	if got := PeriodStart("bogus", now); !got.IsZero() {
		t.Fatalf("expected zero start for unknown period, got %v", got)
	}
}

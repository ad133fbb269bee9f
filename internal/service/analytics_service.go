package service

import (
	"sort"
	"time"

	"github.com/Sudharson1234/emotionv2/internal/emotion"
	"github.com/Sudharson1234/emotionv2/internal/model"
)

// unknownBucket 无法归一化的情绪标签统一落到这个桶里
const unknownBucket = "unknown"

// EmotionBreakdown 单个情绪的统计项
type EmotionBreakdown struct {
	Emotion    string  `json:"emotion"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ChatStats 用户私聊的情绪统计
type ChatStats struct {
	TotalMessages   int                `json:"total_messages"`
	DominantEmotion string             `json:"dominant_emotion"`
	Breakdown       []EmotionBreakdown `json:"breakdown"`
	PeriodStart     *time.Time         `json:"period_start,omitempty"`
	PeriodEnd       *time.Time         `json:"period_end,omitempty"`
}

// GlobalStats 公共聊天室的统计
type GlobalStats struct {
	TotalMessages      int                `json:"total_messages"`
	AIResponses        int                `json:"ai_responses"`
	UniqueParticipants int                `json:"unique_participants"`
	DominantEmotion    string             `json:"dominant_emotion"`
	Breakdown          []EmotionBreakdown `json:"breakdown"`
}

// AnalyticsService 统计分析服务
// 聚合全部在内存完成,数据库只负责取窗口内的记录
type AnalyticsService struct {
	chats *ChatService
}

// NewAnalyticsService 创建统计分析服务实例
func NewAnalyticsService(chats *ChatService) *AnalyticsService {
	return &AnalyticsService{chats: chats}
}

// PeriodStart 把统计周期换算成窗口起点,all 返回零值表示不限
func PeriodStart(period string, now time.Time) time.Time {
	switch period {
	case "day":
		return now.AddDate(0, 0, -1)
	case "week":
		return now.AddDate(0, 0, -7)
	case "month":
		return now.AddDate(0, -1, 0)
	default:
		return time.Time{}
	}
}

// UserChatStats 统计用户在时间窗内的私聊情绪分布
func (s *AnalyticsService) UserChatStats(userID uint, window model.TimeRange) (*ChatStats, error) {
	chats, err := s.chats.GetUserChats(userID, window)
	if err != nil {
		return nil, err
	}
	stats := SummarizeChats(chats)
	if !window.Start.IsZero() {
		stats.PeriodStart = &window.Start
	}
	if !window.End.IsZero() {
		stats.PeriodEnd = &window.End
	}
	return stats, nil
}

// GlobalChatStats 统计公共聊天室的时间窗数据
func (s *AnalyticsService) GlobalChatStats(window model.TimeRange) (*GlobalStats, error) {
	messages, err := s.chats.GetGlobalChats(window)
	if err != nil {
		return nil, err
	}
	return SummarizeGlobalChats(messages), nil
}

// SummarizeChats 汇总私聊记录的情绪分布
func SummarizeChats(chats []model.Chat) *ChatStats {
	counts := make(map[string]int)
	for _, chat := range chats {
		counts[normalizeBucket(chat.DetectedEmotion)]++
	}

	breakdown, dominant := buildBreakdown(counts, len(chats))
	return &ChatStats{
		TotalMessages:   len(chats),
		DominantEmotion: dominant,
		Breakdown:       breakdown,
	}
}

// SummarizeGlobalChats 汇总公共聊天记录
// 参与人数只统计非 AI 消息的去重用户
func SummarizeGlobalChats(messages []model.GlobalChat) *GlobalStats {
	counts := make(map[string]int)
	participants := make(map[uint]struct{})
	aiResponses := 0
	emotive := 0

	for _, msg := range messages {
		if msg.IsAIResponse {
			aiResponses++
			continue
		}
		participants[msg.UserID] = struct{}{}
		if msg.DetectedTextEmotion != "" {
			counts[normalizeBucket(msg.DetectedTextEmotion)]++
			emotive++
		}
	}

	breakdown, dominant := buildBreakdown(counts, emotive)
	return &GlobalStats{
		TotalMessages:      len(messages),
		AIResponses:        aiResponses,
		UniqueParticipants: len(participants),
		DominantEmotion:    dominant,
		Breakdown:          breakdown,
	}
}

// normalizeBucket 标签归一化,归不进枚举的落到 unknown 桶
func normalizeBucket(raw string) string {
	if label, ok := emotion.Normalize(raw); ok {
		return string(label)
	}
	return unknownBucket
}

// buildBreakdown 构造按数量降序的分布列表并给出占比最高的标签
func buildBreakdown(counts map[string]int, total int) ([]EmotionBreakdown, string) {
	breakdown := make([]EmotionBreakdown, 0, len(counts))
	for _, label := range emotion.Labels {
		if count, ok := counts[string(label)]; ok {
			breakdown = append(breakdown, EmotionBreakdown{
				Emotion: string(label),
				Count:   count,
			})
		}
	}
	if count, ok := counts[unknownBucket]; ok {
		breakdown = append(breakdown, EmotionBreakdown{
			Emotion: unknownBucket,
			Count:   count,
		})
	}

	for i := range breakdown {
		if total > 0 {
			breakdown[i].Percentage = float64(breakdown[i].Count) / float64(total) * 100
		}
	}

	// 数量降序,同数量保持枚举顺序
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Count > breakdown[j].Count
	})
	dominant := ""
	if len(breakdown) > 0 {
		dominant = breakdown[0].Emotion
	}
	return breakdown, dominant
}

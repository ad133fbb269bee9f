package service

import (
	"gorm.io/gorm"

	"cnb.cool/zhiqiangwang/pkg/logx"

	"github.com/Sudharson1234/emotionv2/internal/database"
	"github.com/Sudharson1234/emotionv2/internal/model"
)

// ChatService 聊天记录服务
// 写入都是尽力而为,落库失败只记日志,不打断对话流程
type ChatService struct {
	db *gorm.DB
}

// NewChatService 创建聊天记录服务实例
func NewChatService() *ChatService {
	return &ChatService{
		db: database.GetDB(),
	}
}

// SaveChat 保存一轮私聊对话
func (s *ChatService) SaveChat(chat *model.Chat) {
	if err := s.db.Create(chat).Error; err != nil {
		logx.Warn("Failed to save chat for user %d: %v", chat.UserID, err)
	}
}

// SaveGlobalChat 保存一条公共聊天消息
func (s *ChatService) SaveGlobalChat(msg *model.GlobalChat) {
	if err := s.db.Create(msg).Error; err != nil {
		logx.Warn("Failed to save global chat message from %s: %v", msg.Username, err)
	}
}

// GetChatHistory 按时间倒序取用户的私聊历史
func (s *ChatService) GetChatHistory(userID uint, limit int) ([]model.Chat, error) {
	if limit <= 0 {
		limit = 50
	}
	var chats []model.Chat
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&chats).Error
	return chats, err
}

// GetGlobalChatHistory 按时间正序取公共聊天历史,供聊天室回放
func (s *ChatService) GetGlobalChatHistory(limit int) ([]model.GlobalChat, error) {
	if limit <= 0 {
		limit = 100
	}

	// 先倒序取最近的 N 条,再正序返回
	var messages []model.GlobalChat
	err := s.db.Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// GetUserChats 取用户在时间窗内的私聊记录,供报表导出
func (s *ChatService) GetUserChats(userID uint, window model.TimeRange) ([]model.Chat, error) {
	query := s.db.Where("user_id = ?", userID)
	if !window.Start.IsZero() {
		query = query.Where("created_at >= ?", window.Start)
	}
	if !window.End.IsZero() {
		query = query.Where("created_at <= ?", window.End)
	}

	var chats []model.Chat
	err := query.Order("created_at ASC").Find(&chats).Error
	return chats, err
}

// GetGlobalChats 取时间窗内的公共聊天记录,供统计分析
func (s *ChatService) GetGlobalChats(window model.TimeRange) ([]model.GlobalChat, error) {
	query := s.db.Model(&model.GlobalChat{})
	if !window.Start.IsZero() {
		query = query.Where("created_at >= ?", window.Start)
	}
	if !window.End.IsZero() {
		query = query.Where("created_at <= ?", window.End)
	}

	var messages []model.GlobalChat
	err := query.Order("created_at ASC").Find(&messages).Error
	return messages, err
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cnb.cool/zhiqiangwang/pkg/logx"

	"github.com/Sudharson1234/emotionv2/internal/cache"
	"github.com/Sudharson1234/emotionv2/internal/database"
	"github.com/Sudharson1234/emotionv2/internal/model"
)

var (
	// ErrSessionNotFound 会话不存在或已注销
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired 会话已超时
	ErrSessionExpired = errors.New("session expired")
)

// SessionService 会话服务
// 缓存是可选旁路,Redis 不可用时直接走数据库
type SessionService struct {
	db      *gorm.DB
	cache   *cache.SessionCache
	timeout time.Duration
}

// NewSessionService 创建会话服务实例
// sessionCache 传 nil 表示不启用缓存
func NewSessionService(sessionCache *cache.SessionCache, timeout time.Duration) *SessionService {
	if timeout <= 0 {
		timeout = 24 * time.Hour
	}
	return &SessionService{
		db:      database.GetDB(),
		cache:   sessionCache,
		timeout: timeout,
	}
}

// Create 为用户开启新会话,返回会话令牌
func (s *SessionService) Create(ctx context.Context, user *model.User, ipAddress, userAgent string) (*model.UserSession, error) {
	now := time.Now()
	session := &model.UserSession{
		Token:          strings.ReplaceAll(uuid.NewString(), "-", ""),
		UserID:         user.ID,
		IPAddress:      ipAddress,
		UserAgent:      userAgent,
		LastActivityAt: now,
		ExpiresAt:      now.Add(s.timeout),
		IsActive:       true,
	}
	if err := s.db.Create(session).Error; err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	if s.cache != nil {
		entry := &cache.SessionEntry{
			UserID:    user.ID,
			Username:  user.Name,
			ExpiresAt: session.ExpiresAt,
		}
		if err := s.cache.SetSession(ctx, session.Token, entry); err != nil {
			logx.Warn("Failed to cache session %s: %v", session.Token, err)
		}
	}
	return session, nil
}

// Validate 校验令牌,过期的会话在此处立即注销
func (s *SessionService) Validate(ctx context.Context, token string) (*model.UserSession, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	// 缓存快路径只回答"会话有效",过期和未命中都落回数据库
	if s.cache != nil {
		if entry, ok, err := s.cache.GetSession(ctx, token); err == nil && ok {
			if time.Now().Before(entry.ExpiresAt) {
				return &model.UserSession{
					Token:     token,
					UserID:    entry.UserID,
					ExpiresAt: entry.ExpiresAt,
					IsActive:  true,
				}, nil
			}
		}
	}

	var session model.UserSession
	err := s.db.Where("token = ? AND is_active = ?", token, true).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	if session.Expired(time.Now()) {
		if err := s.Deactivate(ctx, token); err != nil {
			logx.Warn("Failed to deactivate expired session %s: %v", token, err)
		}
		return nil, ErrSessionExpired
	}
	return &session, nil
}

// Touch 刷新会话的最近活动时间
func (s *SessionService) Touch(token string) error {
	return s.db.Model(&model.UserSession{}).
		Where("token = ?", token).
		Update("last_activity_at", time.Now()).Error
}

// Deactivate 注销会话并清理缓存
func (s *SessionService) Deactivate(ctx context.Context, token string) error {
	now := time.Now()
	err := s.db.Model(&model.UserSession{}).
		Where("token = ?", token).
		Updates(map[string]any{
			"is_active": false,
			"logout_at": now,
		}).Error
	if err != nil {
		return fmt.Errorf("deactivate session: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.DeleteSession(ctx, token); err != nil {
			logx.Warn("Failed to evict session %s from cache: %v", token, err)
		}
	}
	return nil
}

// ListActive 列出用户当前未过期的活跃会话
func (s *SessionService) ListActive(userID uint) ([]model.UserSession, error) {
	var sessions []model.UserSession
	err := s.db.Where("user_id = ? AND is_active = ? AND expires_at > ?", userID, true, time.Now()).
		Order("last_activity_at DESC").
		Find(&sessions).Error
	return sessions, err
}

package model

import "time"

// UserSession 登录会话模型
// 过期在请求时对比 ExpiresAt 判定,没有后台清理任务
type UserSession struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Token          string     `json:"token" gorm:"uniqueIndex;not null;size:64"`
	UserID         uint       `json:"user_id" gorm:"index"`
	IPAddress      string     `json:"ip_address" gorm:"size:64"`
	UserAgent      string     `json:"user_agent" gorm:"size:255"`
	LastActivityAt time.Time  `json:"last_activity_at"`
	LogoutAt       *time.Time `json:"logout_at,omitempty"`
	ExpiresAt      time.Time  `json:"expires_at" gorm:"index"`
	IsActive       bool       `json:"is_active" gorm:"index;default:true"`
}

// TableName 指定表名
func (UserSession) TableName() string {
	return "user_sessions"
}

// Expired 判断会话在给定时刻是否已过期
func (s *UserSession) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

package model

import "time"

// Chat 私聊记录模型
// 每个成功的对话回合写入一条记录,写入后不再修改
type Chat struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID          uint    `json:"user_id" gorm:"index"`
	UserMessage     string  `json:"user_message" gorm:"type:text"`
	AIResponse      string  `json:"ai_response" gorm:"type:text"`
	DetectedEmotion string  `json:"detected_emotion" gorm:"index;size:30"`
	EmotionScore    float64 `json:"emotion_score"`
	LanguageCode    string  `json:"language_code" gorm:"size:10"`
}

// TableName 指定表名
func (Chat) TableName() string {
	return "chats"
}

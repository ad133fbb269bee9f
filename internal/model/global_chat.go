package model

import "time"

// GlobalChat 公共聊天记录模型
// 同时记录文本情绪和来自摄像头画面的人脸情绪;AI 回复以 IsAIResponse 标记
type GlobalChat struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID                uint     `json:"user_id" gorm:"index"`
	Username              string   `json:"username" gorm:"size:100"`
	Message               string   `json:"message" gorm:"type:text"`
	DetectedTextEmotion   string   `json:"detected_text_emotion" gorm:"size:30"`
	DetectedFaceEmotion   string   `json:"detected_face_emotion" gorm:"size:30"`
	FaceEmotionConfidence *float64 `json:"face_emotion_confidence,omitempty"`
	EmotionScore          *float64 `json:"emotion_score,omitempty"`
	IsAIResponse          bool     `json:"is_ai_response" gorm:"index"`
}

// TableName 指定表名
func (GlobalChat) TableName() string {
	return "global_chats"
}

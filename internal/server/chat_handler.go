package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"cnb.cool/zhiqiangwang/pkg/logx"

	"github.com/Sudharson1234/emotionv2/internal/emotion"
	"github.com/Sudharson1234/emotionv2/internal/middleware"
	"github.com/Sudharson1234/emotionv2/internal/model"
)

// ==================== 对话 ====================

type chatRequest struct {
	Message string `json:"message"`
}

// degradedChatReply 情绪分析失败时的兜底回复
const degradedChatReply = "Thank you for sharing. I'm here to listen. Tell me more about what you're thinking."

func (s *HTTPGinServer) handleChat(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		s.error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		s.error(c, http.StatusBadRequest, "Message cannot be empty")
		return
	}

	analyzed, langCode, _, translated := s.deps.Translator.ToEnglish(c.Request.Context(), req.Message)

	// 分析失败按中性降级处理,对话不中断
	emotionLabel := "neutral"
	emotionScore := 0.5
	var reply string
	var distribution []emotion.Score
	source := ""

	result, err := s.deps.Detector.Detect(c.Request.Context(), analyzed)
	if err != nil {
		logx.Warn("Chat emotion detection failed, degrading to neutral: %v", err)
		reply = degradedChatReply
	} else {
		emotionLabel = string(result.Dominant.Label)
		emotionScore = result.Dominant.Score
		distribution = result.Distribution
		source = result.Source
		reply = s.deps.Responder.Respond(c.Request.Context(), req.Message, emotionLabel, emotionScore, langCode)
	}

	// 落库失败不阻断对话
	now := time.Now()
	s.deps.Chats.SaveChat(&model.Chat{
		CreatedAt:       now,
		UserID:          userID,
		UserMessage:     req.Message,
		AIResponse:      reply,
		DetectedEmotion: emotionLabel,
		EmotionScore:    emotionScore,
		LanguageCode:    langCode,
	})

	s.success(c, gin.H{
		"user_message":     req.Message,
		"ai_response":      reply,
		"emotion":          emotionLabel,
		"emotion_score":    emotionScore,
		"language":         langCode,
		"timestamp":        now,
		"emotion_analysis": distribution,
		"model_used":       source,
		"was_translated":   translated,
	})
}

func (s *HTTPGinServer) handleChatHistory(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		s.error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	chats, err := s.deps.Chats.GetChatHistory(userID, limit)
	if err != nil {
		logx.Error("Failed to load chat history for user %d: %v", userID, err)
		s.error(c, http.StatusInternalServerError, "Failed to load chat history")
		return
	}

	s.success(c, gin.H{
		"total": len(chats),
		"chats": chats,
	})
}

// ==================== 公共聊天室 ====================

func (s *HTTPGinServer) handleGlobalChatHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	messages, err := s.deps.Chats.GetGlobalChatHistory(limit)
	if err != nil {
		logx.Error("Failed to load global chat history: %v", err)
		s.error(c, http.StatusInternalServerError, "Failed to load global chat")
		return
	}

	s.success(c, gin.H{
		"total":    len(messages),
		"messages": messages,
	})
}

type globalChatRequest struct {
	Message        string   `json:"message"`
	FaceEmotion    string   `json:"face_emotion"`
	FaceConfidence *float64 `json:"face_confidence"`
}

func (s *HTTPGinServer) handleGlobalChatSend(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		s.error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req globalChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" && req.FaceEmotion == "" {
		s.error(c, http.StatusBadRequest, "Message or face emotion must be provided")
		return
	}

	username := "Anonymous"
	if user, err := s.deps.Users.GetUserByID(userID); err == nil && user != nil {
		username = user.Name
	}

	// 文本情绪标注是尽力而为,分析不出来就留空
	var textEmotion string
	var emotionScore *float64
	if req.Message != "" {
		if result, err := s.deps.Detector.Detect(c.Request.Context(), req.Message); err == nil {
			textEmotion = string(result.Dominant.Label)
			score := result.Dominant.Score
			emotionScore = &score
		}
	}

	// 按人脸情绪优先、文本情绪兜底的顺序生成共情回复
	var reply string
	switch {
	case req.Message != "" && req.FaceEmotion != "":
		reply = s.deps.Responder.RespondToFace(c.Request.Context(), req.FaceEmotion, textEmotion, req.Message)
	case req.Message != "":
		score := 0.5
		if emotionScore != nil {
			score = *emotionScore
		}
		label := textEmotion
		if label == "" {
			label = "neutral"
		}
		reply = s.deps.Responder.Respond(c.Request.Context(), req.Message, label, score, "en")
	default:
		reply = s.deps.Responder.RespondToFace(c.Request.Context(), req.FaceEmotion, "", "")
	}

	userMessage := req.Message
	if userMessage == "" {
		userMessage = fmt.Sprintf("[Detected face emotion: %s]", req.FaceEmotion)
	}
	s.deps.Chats.SaveGlobalChat(&model.GlobalChat{
		UserID:                userID,
		Username:              username,
		Message:               userMessage,
		DetectedTextEmotion:   textEmotion,
		DetectedFaceEmotion:   req.FaceEmotion,
		FaceEmotionConfidence: req.FaceConfidence,
		EmotionScore:          emotionScore,
	})

	if reply != "" {
		s.deps.Chats.SaveGlobalChat(&model.GlobalChat{
			UserID:       userID,
			Username:     "EmotiChat AI",
			Message:      reply,
			IsAIResponse: true,
		})
	}

	s.success(c, gin.H{
		"username":              username,
		"message":               userMessage,
		"detected_text_emotion": textEmotion,
		"detected_face_emotion": req.FaceEmotion,
		"emotion_score":         emotionScore,
		"ai_response":           reply,
	})
}

type faceResponseRequest struct {
	FaceEmotion    string   `json:"face_emotion" binding:"required"`
	FaceConfidence *float64 `json:"face_confidence"`
	TextEmotion    string   `json:"text_emotion"`
	Message        string   `json:"message"`
}

func (s *HTTPGinServer) handleFaceEmotionResponse(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		s.error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req faceResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	reply := s.deps.Responder.RespondToFace(c.Request.Context(), req.FaceEmotion, req.TextEmotion, req.Message)

	// AI 回复同样进公共时间线
	s.deps.Chats.SaveGlobalChat(&model.GlobalChat{
		UserID:                userID,
		Username:              "EmotiChat AI",
		Message:               reply,
		DetectedFaceEmotion:   req.FaceEmotion,
		FaceEmotionConfidence: req.FaceConfidence,
		IsAIResponse:          true,
	})

	s.success(c, gin.H{
		"ai_response":  reply,
		"face_emotion": req.FaceEmotion,
		"text_emotion": req.TextEmotion,
	})
}

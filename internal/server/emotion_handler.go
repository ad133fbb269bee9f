package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cnb.cool/zhiqiangwang/pkg/logx"

	"github.com/Sudharson1234/emotionv2/internal/emotion"
	"github.com/Sudharson1234/emotionv2/internal/translate"
)

// ==================== 文本情绪 ====================

type textRequest struct {
	Text string `json:"text"`
}

// detectionPayload 文本情绪接口的统一返回结构
func detectionPayload(result *emotion.Result) gin.H {
	return gin.H{
		"dominant_emotion":    result.Dominant,
		"distribution":        result.Distribution,
		"analysis_report":     result.AnalysisReport,
		"key_indicators":      result.KeyIndicators,
		"emotional_intensity": result.EmotionalIntensity,
		"source":              result.Source,
	}
}

// validationStatus 把校验类错误映射成 400,其余返回 0 表示不是校验错误
func validationStatus(err error) (int, string) {
	switch {
	case errors.Is(err, emotion.ErrEmptyText),
		errors.Is(err, emotion.ErrGibberish),
		errors.Is(err, emotion.ErrNoEmotion):
		return http.StatusBadRequest, err.Error()
	default:
		return 0, ""
	}
}

func (s *HTTPGinServer) handleDetectTextEmotion(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	result, err := s.deps.Detector.Detect(c.Request.Context(), req.Text)
	if err != nil {
		if code, message := validationStatus(err); code != 0 {
			s.failure(c, code, message)
			return
		}
		logx.Error("Text emotion detection failed: %v", err)
		s.failure(c, http.StatusInternalServerError, "Failed to analyze text")
		return
	}

	langCode, _ := translate.DetectLanguage(req.Text)

	payload := detectionPayload(result)
	payload["detected_language"] = langCode
	payload["success"] = true
	s.success(c, payload)
}

func (s *HTTPGinServer) handleMultilangText(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	// 先转英文再分析,翻译失败时直接分析原文
	analyzed, langCode, langName, translated := s.deps.Translator.ToEnglish(c.Request.Context(), req.Text)

	result, err := s.deps.Detector.Detect(c.Request.Context(), analyzed)
	if err != nil {
		if code, message := validationStatus(err); code != 0 {
			s.error(c, code, message)
			return
		}
		logx.Error("Multilingual detection failed: %v", err)
		s.error(c, http.StatusInternalServerError, "Failed to analyze text")
		return
	}
	result.DetectedLanguage = langCode
	result.WasTranslated = translated

	// 回复用用户自己的语言
	reply := s.deps.Responder.Respond(c.Request.Context(), req.Text, string(result.Dominant.Label), result.Dominant.Score, langCode)

	payload := detectionPayload(result)
	payload["original_text"] = req.Text
	payload["translated_text"] = analyzed
	payload["detected_language"] = langCode
	payload["language_name"] = langName
	payload["was_translated"] = translated
	payload["ai_response"] = reply
	s.success(c, payload)
}

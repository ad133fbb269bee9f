package emotion

import (
	"context"
	"fmt"
	"strings"

	"cnb.cool/zhiqiangwang/pkg/logx"

	"github.com/Sudharson1234/emotionv2/internal/llm"
	"github.com/Sudharson1234/emotionv2/internal/translate"
)

// Responder 共情回复生成器
// 远程可用时让大模型生成回复,失败时落到静态话术表,保证永远返回非空字符串
type Responder struct {
	remote Completer
}

// NewResponder 创建回复生成器
// remote 传 nil 表示只使用静态话术
func NewResponder(remote Completer) *Responder {
	return &Responder{remote: remote}
}

// emotionGuidance 每种情绪对应的提示词上下文
var emotionGuidance = map[Label]string{
	Joy:      "The user is expressing happiness/joy",
	Sadness:  "The user is expressing sadness or melancholy",
	Anger:    "The user is expressing anger or frustration",
	Fear:     "The user is expressing fear or anxiety",
	Disgust:  "The user is expressing disgust or disapproval",
	Surprise: "The user is expressing surprise or shock",
	Neutral:  "The user is expressing neutral emotions",
}

const responderSystemPrompt = "You are an empathetic, deeply caring AI companion. You truly understand emotions and respond with genuine warmth, wisdom, and helpful guidance. Your responses feel natural, human, and supportive."

// Respond 根据情绪生成共情回复
// 所有异常都在内部消化并落到下一级话术,绝不向调用方抛错
func (r *Responder) Respond(ctx context.Context, message string, emotionLabel string, emotionScore float64, langCode string) string {
	label, ok := Normalize(emotionLabel)
	if !ok {
		label = Neutral
	}

	guidance, ok := emotionGuidance[label]
	if !ok {
		guidance = fmt.Sprintf("The user is expressing %s emotions", emotionLabel)
	}

	if r.remote != nil {
		prompt := fmt.Sprintf(`You are an empathetic, warm, and supportive AI companion. The user has shared their thoughts.

Emotion Detected: %s (%.1f%% confidence)
Context: %s

User's Message: %q

Provide a warm, genuine response that:
1. Acknowledges their emotional state with sincerity
2. Shows deep understanding and empathy
3. Offers helpful perspective or support based on their emotion
4. Keeps it conversational (2-3 sentences maximum)
5. Feels like a real friend supporting them

Be genuine, warm, and supportive.`, label, emotionScore*100, guidance, message)

		if langCode != "" && langCode != "en" {
			prompt += fmt.Sprintf("\n\nIMPORTANT: Reply ONLY in %s.", translate.LanguageName(langCode))
		}

		reply, err := r.remote.Complete(ctx, responderSystemPrompt, prompt, llm.CompleteOptions{
			Temperature: 0.8,
			MaxTokens:   300,
			TopP:        0.9,
		})
		if err == nil {
			if trimmed := strings.TrimSpace(reply); trimmed != "" {
				return trimmed
			}
		} else {
			logx.Warn("Remote response generation failed, using fallback table: %v", err)
		}
	}

	return fallbackResponse(label, langCode)
}

// fallbackResponse 静态话术查表
// 未收录的语言退化到英语,最终兜底是嵌入原始标签的通用句子
func fallbackResponse(label Label, langCode string) string {
	table, ok := fallbackResponses[langCode]
	if !ok {
		table = fallbackResponses["en"]
	}
	if reply, ok := table[label]; ok && reply != "" {
		return reply
	}
	if reply, ok := fallbackResponses["en"][label]; ok && reply != "" {
		return reply
	}
	return fmt.Sprintf("I appreciate you sharing that with me. I can sense some %s in your words. I'm here to listen and support you. What else is on your mind?", label)
}

const faceResponderSystemPrompt = "You are an empathetic, perceptive AI that understands facial expressions and emotions. You provide genuine, supportive responses that validate people's feelings and create a safe space for them to express themselves."

// RespondToFace 根据人脸情绪(可叠加文本情绪)生成回复,用于直播画面路径
func (r *Responder) RespondToFace(ctx context.Context, faceEmotion, textEmotion, message string) string {
	if r.remote == nil {
		return faceFallbackResponse(faceEmotion)
	}

	var prompt string
	if message != "" {
		if textEmotion == "" {
			textEmotion = "neutral"
		}
		prompt = fmt.Sprintf(`You are an emotionally intelligent AI companion supporting a user in a live chat.

Detected Face Emotion: %s
Detected Text Emotion: %s
User's Message: %q

Response should:
1. Acknowledge their detected emotional state (face + text if both are strong)
2. Be warm, genuine, and empathetic
3. Provide supportive feedback or guidance
4. Keep it concise (2-3 sentences)
5. Encourage more conversation if appropriate

Respond like a compassionate friend who understands their emotional needs.`, faceEmotion, textEmotion, message)
	} else {
		prompt = fmt.Sprintf(`You are an emotionally intelligent AI companion supporting a user in a live video stream.

User's Facial Emotion: %s

The user is broadcasting their face emotion in the live stream. Provide a warm, supportive, and empathetic response that:
1. Acknowledges their emotional state based on their facial expression
2. Validates their feelings
3. Offers a supportive comment or question
4. Keep it concise (1-2 sentences) as they're in a live stream

Respond with genuine human-like warmth and understanding.`, faceEmotion)
	}

	reply, err := r.remote.Complete(ctx, faceResponderSystemPrompt, prompt, llm.CompleteOptions{
		Temperature: 0.7,
		MaxTokens:   250,
	})
	if err != nil {
		logx.Warn("Face emotion response generation failed, using fallback: %v", err)
		return faceFallbackResponse(faceEmotion)
	}
	if trimmed := strings.TrimSpace(reply); trimmed != "" {
		return trimmed
	}
	return faceFallbackResponse(faceEmotion)
}

// faceFallbackResponse 人脸情绪的静态话术
func faceFallbackResponse(faceEmotion string) string {
	label, ok := Normalize(faceEmotion)
	if !ok {
		return fmt.Sprintf("I see you're expressing %s. I'm here to support you. What would you like to share?", faceEmotion)
	}
	if reply, ok := faceFallbackResponses[label]; ok {
		return reply
	}
	return fmt.Sprintf("I notice you're expressing %s. I'm here to listen and support you. What's on your mind?", faceEmotion)
}

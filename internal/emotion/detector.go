package emotion

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"cnb.cool/zhiqiangwang/pkg/logx"

	"github.com/Sudharson1234/emotionv2/internal/llm"
)

// neutralRejectThreshold 高置信度 neutral 按无情绪处理的阈值
const neutralRejectThreshold = 0.95

// Completer 远程补全接口(便于测试替换)
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, opts llm.CompleteOptions) (string, error)
}

// Detector 情绪推理适配器
// 优先调用远程大模型,任何失败都降级到本地分类器,不做重试
type Detector struct {
	remote Completer
	local  Classifier
}

// NewDetector 创建情绪推理适配器
// remote 传 nil 表示远程路径未启用,直接走本地分类器
func NewDetector(remote Completer, local Classifier) *Detector {
	return &Detector{
		remote: remote,
		local:  local,
	}
}

const detectionSystemPrompt = "You are an expert emotion psychologist and text analyst. Provide detailed, insightful analysis. Respond with valid JSON only."

// buildDetectionPrompt 构造要求严格JSON输出的结构化提示词
func buildDetectionPrompt(text string) string {
	return fmt.Sprintf(`Analyze the emotion in the following text and provide both structured data and detailed analysis.
Text: %q

Respond with ONLY a valid JSON object (no markdown, no extra text) with this exact structure:
{
    "Dominant_emotion": {
        "label": "emotion_name",
        "score": confidence_score_0_to_1,
        "percentage": percentage_0_to_100
    },
    "Emotion Analysis": [
        {"label": "emotion1", "score": score1, "percentage": percent1},
        {"label": "emotion2", "score": score2, "percentage": percent2},
        {"label": "emotion3", "score": score3, "percentage": percent3}
    ],
    "analysis_report": "Write a comprehensive 2-3 paragraph analysis that includes: (1) Identification of the dominant emotion and why it's present, (2) Explanation of secondary emotions and their contribution to overall sentiment, (3) Key phrases or words that trigger these emotions, (4) Overall sentiment summary and emotional intensity.",
    "key_indicators": ["List of 3-5 specific words or phrases that strongly indicate the dominant emotion"],
    "emotional_intensity": "Scale from 1-10 and brief explanation"
}

Emotions can be: joy, sadness, anger, fear, disgust, surprise, neutral
`, text)
}

// Detect 对已通过校验的文本做情绪推理
// 校验失败返回 ErrEmptyText/ErrGibberish,高置信度 neutral 返回 ErrNoEmotion
func (d *Detector) Detect(ctx context.Context, text string) (*Result, error) {
	if err := Validate(text); err != nil {
		return nil, err
	}

	if d.remote != nil {
		result, err := d.detectRemote(ctx, text)
		if err == nil {
			return result, nil
		}
		if err == ErrNoEmotion {
			return nil, err
		}
		logx.Warn("Remote emotion detection failed, falling back to local classifier: %v", err)
	}

	return d.detectLocal(text)
}

// jsonObjectPattern 容忍响应前后的非JSON内容,提取首个大括号包裹的对象
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// detectRemote 远程推理路径
// 返回的任何格式偏差都包装为 RemoteFormatError,由调用方触发本地降级
func (d *Detector) detectRemote(ctx context.Context, text string) (*Result, error) {
	raw, err := d.remote.Complete(ctx, detectionSystemPrompt, buildDetectionPrompt(text), llm.CompleteOptions{
		Temperature: 0.5,
		MaxTokens:   1000,
	})
	if err != nil {
		return nil, err
	}

	payload, err := parseRemotePayload(raw)
	if err != nil {
		return nil, err
	}

	dominant, ok := Normalize(payload.dominant.Label)
	if !ok {
		return nil, &RemoteFormatError{Reason: fmt.Sprintf("unknown emotion label %q", payload.dominant.Label)}
	}

	// 高置信度 neutral 视为无信号而不是有效情绪
	if dominant == Neutral && payload.dominant.Score > neutralRejectThreshold {
		return nil, ErrNoEmotion
	}

	distribution := make([]Score, 0, len(payload.analysis))
	for _, item := range payload.analysis {
		label, ok := Normalize(item.Label)
		if !ok {
			// 分布中的未知标签原样保留,分析侧会计入 unknown
			label = Label(strings.ToLower(item.Label))
		}
		distribution = append(distribution, Score{
			Label:      label,
			Score:      item.Score,
			Percentage: item.Percentage,
		})
	}

	return &Result{
		Dominant: Score{
			Label:      dominant,
			Score:      payload.dominant.Score,
			Percentage: payload.dominant.Percentage,
		},
		Distribution:       distribution,
		AnalysisReport:     payload.analysisReport,
		KeyIndicators:      payload.keyIndicators,
		EmotionalIntensity: payload.emotionalIntensity,
		Source:             SourceRemote,
	}, nil
}

type remoteScore struct {
	Label      string  `json:"label"`
	Score      float64 `json:"score"`
	Percentage float64 `json:"percentage"`
}

type remotePayload struct {
	dominant           remoteScore
	analysis           []remoteScore
	analysisReport     string
	keyIndicators      []string
	emotionalIntensity string
}

// parseRemotePayload 把远程输出当作不可信的外部结构解析
// 必需字段缺失或类型不符都是 RemoteFormatError
func parseRemotePayload(raw string) (*remotePayload, error) {
	text := strings.TrimSpace(raw)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		// 尝试从夹杂说明文字的响应中提取JSON对象
		match := jsonObjectPattern.FindString(text)
		if match == "" {
			return nil, &RemoteFormatError{Reason: "no JSON object in response"}
		}
		if err := json.Unmarshal([]byte(match), &fields); err != nil {
			return nil, &RemoteFormatError{Reason: "extracted object is not valid JSON"}
		}
	}

	dominantRaw, ok := fields["Dominant_emotion"]
	if !ok {
		return nil, &RemoteFormatError{Reason: "missing Dominant_emotion"}
	}
	analysisRaw, ok := fields["Emotion Analysis"]
	if !ok {
		return nil, &RemoteFormatError{Reason: "missing Emotion Analysis"}
	}

	payload := &remotePayload{}
	if err := json.Unmarshal(dominantRaw, &payload.dominant); err != nil {
		return nil, &RemoteFormatError{Reason: "malformed Dominant_emotion"}
	}
	if payload.dominant.Label == "" {
		return nil, &RemoteFormatError{Reason: "empty dominant label"}
	}
	if err := json.Unmarshal(analysisRaw, &payload.analysis); err != nil {
		return nil, &RemoteFormatError{Reason: "malformed Emotion Analysis"}
	}

	// 附加字段缺失不致命
	if v, ok := fields["analysis_report"]; ok {
		_ = json.Unmarshal(v, &payload.analysisReport)
	}
	if v, ok := fields["key_indicators"]; ok {
		_ = json.Unmarshal(v, &payload.keyIndicators)
	}
	if v, ok := fields["emotional_intensity"]; ok {
		_ = json.Unmarshal(v, &payload.emotionalIntensity)
	}

	return payload, nil
}

// detectLocal 本地降级路径
func (d *Detector) detectLocal(text string) (*Result, error) {
	scores, err := d.local.Classify(text)
	if err != nil {
		return nil, fmt.Errorf("local classifier error: %w", err)
	}
	if len(scores) == 0 {
		return nil, fmt.Errorf("local classifier returned empty distribution")
	}

	top := scores[0]
	if top.Label == Neutral && top.Score > neutralRejectThreshold {
		return nil, ErrNoEmotion
	}

	report := generateAnalysisReport(text, scores)

	return &Result{
		Dominant:           top,
		Distribution:       scores,
		AnalysisReport:     report.Report,
		KeyIndicators:      report.KeyIndicators,
		EmotionalIntensity: report.Intensity,
		Source:             SourceLocal,
	}, nil
}

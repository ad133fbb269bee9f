package emotion

import "fmt"

// 推理来源
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
)

// Score 单个标签的得分
type Score struct {
	Label      Label   `json:"label"`
	Score      float64 `json:"score"`
	Percentage float64 `json:"percentage"`
}

// Result 一次情绪推理的完整结果
// 每次推理调用生成一个,不可变,不直接落库
type Result struct {
	Dominant           Score    `json:"dominant_emotion"`
	Distribution       []Score  `json:"emotion_analysis"` // 按得分降序,合计约为1
	AnalysisReport     string   `json:"analysis_report"`
	KeyIndicators      []string `json:"key_indicators"`
	EmotionalIntensity string   `json:"emotional_intensity"`
	Source             string   `json:"model_used"`
	DetectedLanguage   string   `json:"detected_language,omitempty"`
	WasTranslated      bool     `json:"was_translated,omitempty"`
}

// RemoteFormatError 远程模型返回了不符合约定结构的内容
// 作为受控的降级信号,触发本地回退而不是向上抛异常
type RemoteFormatError struct {
	Reason string
}

// Error 实现 error
func (e *RemoteFormatError) Error() string {
	return fmt.Sprintf("remote model returned malformed output: %s", e.Reason)
}

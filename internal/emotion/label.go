package emotion

import "strings"

// Label canonical情绪标签,内部逻辑只在这个封闭枚举上分支
type Label string

const (
	Joy      Label = "joy"
	Sadness  Label = "sadness"
	Anger    Label = "anger"
	Fear     Label = "fear"
	Disgust  Label = "disgust"
	Surprise Label = "surprise"
	Neutral  Label = "neutral"
)

// Labels 全部标准标签,顺序固定
var Labels = []Label{Joy, Sadness, Anger, Fear, Disgust, Surprise, Neutral}

// synonyms 口语别名到标准标签的映射
// 远程模型和人脸后端会返回 happy/sad/angry 这类写法,在边界统一归一化
var synonyms = map[string]Label{
	"joy":       Joy,
	"happy":     Joy,
	"happiness": Joy,
	"joyful":    Joy,
	"sadness":   Sadness,
	"sad":       Sadness,
	"anger":     Anger,
	"angry":     Anger,
	"fear":      Fear,
	"fearful":   Fear,
	"anxiety":   Fear,
	"disgust":   Disgust,
	"disgusted": Disgust,
	"surprise":  Surprise,
	"surprised": Surprise,
	"neutral":   Neutral,
}

// Normalize 将自由文本标签归一化为标准标签
// 未知标签返回 false,由调用方决定计入 unknown 还是原样透传
func Normalize(raw string) (Label, bool) {
	label, ok := synonyms[strings.ToLower(strings.TrimSpace(raw))]
	return label, ok
}

// String 实现 Stringer
func (l Label) String() string {
	return string(l)
}

package emotion

import (
	"sort"
	"strings"
)

// Classifier 本地情绪分类器
// 返回覆盖全部标准标签的得分分布,合计约为1
type Classifier interface {
	Classify(text string) ([]Score, error)
}

// LexiconClassifier 基于关键词词典的本地分类器
// 文本在进入分类前已经被翻译层归一化为英语
type LexiconClassifier struct{}

// NewLexiconClassifier 创建词典分类器
func NewLexiconClassifier() *LexiconClassifier {
	return &LexiconClassifier{}
}

var keywordBuckets = map[Label][]string{
	Joy: {
		"happy", "joy", "glad", "delighted", "wonderful", "great", "amazing", "awesome",
		"love", "excited", "fantastic", "thrilled", "grateful", "thankful", "smile",
		"cheerful", "pleased", "excellent", "enjoy", "celebrate", "haha", "lol", "yay",
	},
	Sadness: {
		"sad", "unhappy", "depressed", "miserable", "lonely", "cry", "crying", "tears",
		"heartbroken", "grief", "sorrow", "hopeless", "hurt", "loss", "lost", "miss",
		"down", "gloomy", "disappointed", "regret", "empty",
	},
	Anger: {
		"angry", "furious", "mad", "rage", "hate", "annoyed", "irritated", "frustrated",
		"outraged", "pissed", "fed up", "sick of", "unfair", "infuriating", "resent",
	},
	Fear: {
		"afraid", "scared", "fear", "terrified", "anxious", "anxiety", "worried", "worry",
		"nervous", "panic", "dread", "frightened", "alarmed", "uneasy", "insecure",
	},
	Disgust: {
		"disgusting", "disgusted", "gross", "revolting", "nasty", "repulsive", "sickening",
		"awful", "horrible", "vile", "appalling", "distasteful", "creepy",
	},
	Surprise: {
		"surprised", "surprise", "shocked", "unexpected", "unbelievable", "wow", "whoa",
		"astonished", "stunned", "startled", "suddenly", "can't believe", "no way",
	},
}

// 得分权重,与感叹号加成一起决定分布形状
const (
	keywordWeight    = 3.0
	neutralBaseline  = 0.5
	zeroLabelEpsilon = 0.01
)

var punctuationBoost = map[Label]float64{
	Joy:      2,
	Surprise: 1,
}

// Classify 用关键词命中计分并归一化为分布
// 没有任何命中时返回高置信度的 neutral,由上层的无情绪策略处理
func (c *LexiconClassifier) Classify(text string) ([]Score, error) {
	normalized := strings.ToLower(strings.TrimSpace(text))

	raw := make(map[Label]float64, len(Labels))
	for label, keywords := range keywordBuckets {
		for _, word := range keywords {
			if strings.Contains(normalized, word) {
				raw[label] += keywordWeight
			}
		}
	}

	// 感叹号对高唤起情绪加成
	if exclamations := strings.Count(text, "!"); exclamations > 0 {
		if raw[Joy] > 0 {
			raw[Joy] += float64(exclamations) * punctuationBoost[Joy]
		}
		if raw[Surprise] > 0 {
			raw[Surprise] += float64(exclamations) * punctuationBoost[Surprise]
		}
	}

	total := 0.0
	for _, s := range raw {
		total += s
	}

	// 没有情绪信号,neutral 占据几乎全部概率质量
	if total == 0 {
		scores := make([]Score, 0, len(Labels))
		for _, label := range Labels {
			s := zeroLabelEpsilon / 2
			if label == Neutral {
				s = 1 - float64(len(Labels)-1)*zeroLabelEpsilon/2
			}
			scores = append(scores, Score{Label: label, Score: round4(s), Percentage: round2(s * 100)})
		}
		sortScores(scores)
		return scores, nil
	}

	// neutral 保留一个小的兜底份额
	raw[Neutral] += neutralBaseline
	total += neutralBaseline
	for _, label := range Labels {
		if raw[label] == 0 {
			raw[label] = zeroLabelEpsilon
			total += zeroLabelEpsilon
		}
	}

	scores := make([]Score, 0, len(Labels))
	for _, label := range Labels {
		s := raw[label] / total
		scores = append(scores, Score{Label: label, Score: round4(s), Percentage: round2(s * 100)})
	}
	sortScores(scores)
	return scores, nil
}

func sortScores(scores []Score) {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
}

func round4(v float64) float64 {
	return float64(int(v*10000+0.5)) / 10000
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

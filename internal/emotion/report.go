package emotion

import (
	"fmt"
	"strings"
)

// analysisReport 本地路径合成的分析报告
type analysisReport struct {
	Report        string
	KeyIndicators []string
	Intensity     string
}

// generateAnalysisReport 根据得分分布合成三段式分析报告
// 远程路径由模型生成报告,本地路径用这里的模板补齐同样的字段
func generateAnalysisReport(text string, scores []Score) analysisReport {
	dominant := scores[0]
	var secondary []Score
	if len(scores) > 1 {
		end := 3
		if len(scores) < end {
			end = len(scores)
		}
		secondary = scores[1:end]
	}

	// 取较长的词作为触发词候选
	var keyIndicators []string
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if len(word) > 3 {
			keyIndicators = append(keyIndicators, word)
		}
		if len(keyIndicators) == 5 {
			break
		}
	}

	// 按主导情绪得分划定强度档位
	var intensity string
	switch {
	case dominant.Score >= 0.75:
		intensity = "Very High (8-10/10)"
	case dominant.Score >= 0.5:
		intensity = "High (6-8/10)"
	case dominant.Score >= 0.3:
		intensity = "Moderate (4-6/10)"
	default:
		intensity = "Low (1-4/10)"
	}

	emotionName := capitalize(string(dominant.Label))
	dominantPct := dominant.Score * 100

	paragraph1 := fmt.Sprintf("The text exhibits a dominant emotion of %s (%.2f%%), which is evident throughout the linguistic choices and tone of the message. This emotion forms the primary emotional foundation of the utterance and reflects the speaker's core sentiment regarding their subject matter. The presence of %s suggests specific psychological and emotional states that are conveyed through word choice, sentence structure, and overall narrative tone.",
		emotionName, dominantPct, emotionName)

	var paragraph2 string
	if len(secondary) > 0 {
		parts := make([]string, 0, len(secondary))
		for _, s := range secondary {
			parts = append(parts, fmt.Sprintf("%s (%.2f%%)", capitalize(string(s.Label)), s.Score*100))
		}
		paragraph2 = fmt.Sprintf("Contributing to the overall emotional landscape are secondary emotions including %s. These emotions add nuance and complexity to the primary sentiment, suggesting a multi-layered emotional response. The interplay between the dominant %s emotion and these secondary emotions creates a richer emotional narrative, indicating that the speaker's feelings are not monolithic but rather comprise several intertwined emotional dimensions that together form their complete emotional response.",
			strings.Join(parts, ", "), emotionName)
	} else {
		paragraph2 = fmt.Sprintf("The emotional expression is primarily focused on %s, with minimal secondary emotional components. This suggests a concentrated, singular emotional focus where the speaker's sentiment is clearly aligned toward one dominant emotional state.", emotionName)
	}

	indicatorList := keyIndicators
	if len(indicatorList) > 4 {
		indicatorList = indicatorList[:4]
	}
	quoted := make([]string, 0, len(indicatorList))
	for _, w := range indicatorList {
		quoted = append(quoted, "'"+w+"'")
	}
	paragraph3 := fmt.Sprintf("Key phrases and word choices such as %s serve as linguistic indicators of the underlying emotional state. These specific terms trigger the emotional recognition and contribute significantly to the overall classification. The emotional intensity of this text is rated as %s, reflecting the strength and clarity of the emotional expression conveyed through the message.",
		strings.Join(quoted, ", "), intensity)

	return analysisReport{
		Report:        paragraph1 + "\n\n" + paragraph2 + "\n\n" + paragraph3,
		KeyIndicators: keyIndicators,
		Intensity:     intensity,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

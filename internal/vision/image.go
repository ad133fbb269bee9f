package vision

import "sort"

// ambiguityGapPercent 最高两项得分差距小于该百分点视为判定不稳
const ambiguityGapPercent = 15.0

// markAmbiguity 根据得分分布标注模糊判定并记录第二名
// 得分按百分制解释,少于两项时不做标注
func markAmbiguity(r *FaceResult) {
	if r == nil || len(r.Scores) < 2 {
		return
	}

	type scored struct {
		label string
		score float64
	}
	ranked := make([]scored, 0, len(r.Scores))
	for label, score := range r.Scores {
		ranked = append(ranked, scored{label: label, score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score == ranked[j].score {
			return ranked[i].label < ranked[j].label
		}
		return ranked[i].score > ranked[j].score
	})

	if ranked[0].score-ranked[1].score < ambiguityGapPercent {
		r.IsAmbiguous = true
		r.RunnerUp = ranked[1].label
	}
}

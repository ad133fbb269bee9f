package vision

import (
	"context"
	"fmt"

	"cnb.cool/zhiqiangwang/pkg/logx"
)

// defaultFrameStride 视频按固定步长抽样,逐帧分析代价太高
const defaultFrameStride = 20

// VideoAnalyzer 把抽帧和逐帧人脸分析串起来
type VideoAnalyzer struct {
	analyzer  Analyzer
	extractor *FrameExtractor
	stride    int
}

// NewVideoAnalyzer 创建视频分析器,stride 非正数时使用默认步长
func NewVideoAnalyzer(analyzer Analyzer, extractor *FrameExtractor, stride int) *VideoAnalyzer {
	if stride <= 0 {
		stride = defaultFrameStride
	}
	return &VideoAnalyzer{analyzer: analyzer, extractor: extractor, stride: stride}
}

// AnalyzeVideo 抽帧采样后汇总整段视频的情绪
func (v *VideoAnalyzer) AnalyzeVideo(ctx context.Context, videoPath string) (*VideoResult, error) {
	frames, err := v.extractor.ExtractFrames(ctx, videoPath)
	if err != nil {
		return nil, err
	}

	var results []FrameResult
	sampled := 0
	for i := 0; i < len(frames); i += v.stride {
		sampled++
		face, err := v.analyzer.AnalyzeImage(ctx, frames[i])
		if err != nil {
			logx.Warn("Frame %d analysis failed, skipping: %v", i, err)
			continue
		}
		if !face.FaceDetected {
			continue
		}
		results = append(results, FrameResult{
			FrameIndex: i,
			Label:      face.Label,
			Confidence: face.Confidence,
		})
	}

	summary := SummarizeFrames(results)
	summary.FramesTotal = len(frames)
	summary.FramesSampled = sampled
	if summary.FramesWithFace == 0 {
		return nil, fmt.Errorf("no face detected in any sampled frame")
	}
	return summary, nil
}

// SummarizeFrames 众数投票汇总各帧结果
// 置信度取与众数标签一致的帧的平均值
func SummarizeFrames(frames []FrameResult) *VideoResult {
	counts := make(map[string]int)
	for _, f := range frames {
		counts[f.Label]++
	}

	best := ""
	for label, count := range counts {
		if best == "" || count > counts[best] || (count == counts[best] && label < best) {
			best = label
		}
	}

	var sum float64
	var agreeing int
	for _, f := range frames {
		if f.Label == best {
			sum += f.Confidence
			agreeing++
		}
	}

	result := &VideoResult{
		Label:          best,
		FramesWithFace: len(frames),
		LabelCounts:    counts,
		Frames:         frames,
	}
	if agreeing > 0 {
		result.Confidence = sum / float64(agreeing)
	}
	return result
}

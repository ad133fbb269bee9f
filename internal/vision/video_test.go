package vision

import (
	"math"
	"testing"
)

func TestSummarizeFramesMajorityVote(t *testing.T) {
	var frames []FrameResult
	for i := 0; i < 27; i++ {
		frames = append(frames, FrameResult{FrameIndex: i * 20, Label: "happy", Confidence: 80})
	}
	for i := 0; i < 3; i++ {
		frames = append(frames, FrameResult{FrameIndex: 600 + i*20, Label: "sad", Confidence: 95})
	}

	result := SummarizeFrames(frames)
	if result.Label != "happy" {
		t.Fatalf("expected happy majority, got %s", result.Label)
	}
	if result.FramesWithFace != 30 {
		t.Fatalf("expected 30 frames with faces, got %d", result.FramesWithFace)
	}
	// 置信度只取与众数标签一致的帧
	if math.Abs(result.Confidence-80) > 0.001 {
		t.Fatalf("expected mean confidence 80 from agreeing frames, got %f", result.Confidence)
	}
	if result.LabelCounts["happy"] != 27 || result.LabelCounts["sad"] != 3 {
		t.Fatalf("unexpected label counts: %v", result.LabelCounts)
	}
}

func TestSummarizeFramesMixedConfidence(t *testing.T) {
	frames := []FrameResult{
		{FrameIndex: 0, Label: "surprise", Confidence: 70},
		{FrameIndex: 20, Label: "surprise", Confidence: 90},
		{FrameIndex: 40, Label: "neutral", Confidence: 99},
	}

	result := SummarizeFrames(frames)
	if result.Label != "surprise" {
		t.Fatalf("expected surprise, got %s", result.Label)
	}
	if math.Abs(result.Confidence-80) > 0.001 {
		t.Fatalf("expected mean confidence 80, got %f", result.Confidence)
	}
}

func TestSummarizeFramesTieBreaksAlphabetically(t *testing.T) {
	frames := []FrameResult{
		{FrameIndex: 0, Label: "sad", Confidence: 50},
		{FrameIndex: 20, Label: "angry", Confidence: 50},
	}

	result := SummarizeFrames(frames)
	if result.Label != "angry" {
		t.Fatalf("expected deterministic tie-break to angry, got %s", result.Label)
	}
}

package emotion

import (
	"math"
	"testing"
)

func TestLexiconClassifyHappyText(t *testing.T) {
	scores, err := NewLexiconClassifier().Classify("I am so happy today!")
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if len(scores) != len(Labels) {
		t.Fatalf("expected %d scores, got %d", len(Labels), len(scores))
	}
	if scores[0].Label != Joy {
		t.Fatalf("expected joy as top emotion, got %s", scores[0].Label)
	}
	if scores[0].Score < 0.85 {
		t.Fatalf("expected joy score >= 0.85, got %f", scores[0].Score)
	}
}

func TestLexiconClassifyNoSignalIsHighConfidenceNeutral(t *testing.T) {
	scores, err := NewLexiconClassifier().Classify("The meeting starts at noon")
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if scores[0].Label != Neutral {
		t.Fatalf("expected neutral as top emotion, got %s", scores[0].Label)
	}
	if scores[0].Score <= 0.95 {
		t.Fatalf("expected neutral score above 0.95, got %f", scores[0].Score)
	}
}

func TestLexiconClassifyDistributionSumsToOne(t *testing.T) {
	scores, err := NewLexiconClassifier().Classify("I am scared and worried about tomorrow")
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if scores[0].Label != Fear {
		t.Fatalf("expected fear as top emotion, got %s", scores[0].Label)
	}

	sum := 0.0
	for _, s := range scores {
		sum += s.Score
	}
	if math.Abs(sum-1.0) > 0.01 {
		t.Fatalf("expected distribution to sum to ~1.0, got %f", sum)
	}
}

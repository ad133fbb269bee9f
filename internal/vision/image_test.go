package vision

import "testing"

func TestMarkAmbiguityCloseScores(t *testing.T) {
	result := &FaceResult{
		FaceDetected: true,
		Label:        "happy",
		Scores: map[string]float64{
			"happy":   42.0,
			"neutral": 30.0,
			"sad":     28.0,
		},
	}
	markAmbiguity(result)

	if !result.IsAmbiguous {
		t.Fatalf("expected ambiguous result for 42 vs 30")
	}
	if result.RunnerUp != "neutral" {
		t.Fatalf("expected neutral runner-up, got %s", result.RunnerUp)
	}
}

func TestMarkAmbiguityClearWinner(t *testing.T) {
	result := &FaceResult{
		FaceDetected: true,
		Label:        "happy",
		Scores: map[string]float64{
			"happy":   60.0,
			"neutral": 20.0,
			"sad":     20.0,
		},
	}
	markAmbiguity(result)

	if result.IsAmbiguous {
		t.Fatalf("expected unambiguous result for 60 vs 20")
	}
	if result.RunnerUp != "" {
		t.Fatalf("expected empty runner-up, got %s", result.RunnerUp)
	}
}

func TestMarkAmbiguitySingleScore(t *testing.T) {
	result := &FaceResult{
		FaceDetected: true,
		Label:        "happy",
		Scores:       map[string]float64{"happy": 99.0},
	}
	markAmbiguity(result)

	if result.IsAmbiguous {
		t.Fatalf("single score must not be ambiguous")
	}
}

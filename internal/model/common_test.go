package model

import (
	"testing"
	"time"
)

func TestTimeRangeContainsInclusiveBounds(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)
	window := TimeRange{Start: start, End: end}

	if !window.Contains(start) {
		t.Fatalf("window start must be inclusive")
	}
	if !window.Contains(end) {
		t.Fatalf("window end must be inclusive")
	}
	if window.Contains(start.Add(-time.Second)) {
		t.Fatalf("instant before window start must be excluded")
	}
	if window.Contains(end.Add(time.Second)) {
		t.Fatalf("instant after window end must be excluded")
	}
}

func TestTimeRangeZeroEndIsUnbounded(t *testing.T) {
	window := TimeRange{Start: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)}
	if !window.Contains(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("zero end must mean unbounded window")
	}
}

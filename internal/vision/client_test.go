package vision

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientAnalyzeImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analyze" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Image == "" {
			t.Fatalf("expected base64 image payload")
		}
		json.NewEncoder(w).Encode(analyzeResponse{
			FaceDetected:    true,
			DominantEmotion: "happy",
			Confidence:      72.5,
			Scores:          map[string]float64{"happy": 72.5, "neutral": 20.0, "sad": 7.5},
			Region:          &BoundingBox{X: 10, Y: 20, Width: 100, Height: 100},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	result, err := client.AnalyzeImage(context.Background(), []byte("fake-jpeg-bytes"))
	if err != nil {
		t.Fatalf("AnalyzeImage returned error: %v", err)
	}
	if !result.FaceDetected {
		t.Fatalf("expected detected face")
	}
	if result.Label != "happy" {
		t.Fatalf("expected happy, got %s", result.Label)
	}
	if result.IsAmbiguous {
		t.Fatalf("72.5 vs 20 must not be ambiguous")
	}
	if result.Box == nil || result.Box.Width != 100 {
		t.Fatalf("unexpected bounding box: %+v", result.Box)
	}
}

func TestClientAnalyzeImageNoFace(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(analyzeResponse{FaceDetected: false})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	result, err := client.AnalyzeImage(context.Background(), []byte("fake"))
	if err != nil {
		t.Fatalf("no face must not be an error, got %v", err)
	}
	if result.FaceDetected {
		t.Fatalf("expected face_detected=false")
	}
	if result.Label != "" {
		t.Fatalf("expected empty label, got %s", result.Label)
	}
}

func TestClientAnalyzeImageBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	if _, err := client.AnalyzeImage(context.Background(), []byte("fake")); err == nil {
		t.Fatalf("expected error on backend failure")
	}
}

func TestClientAnalyzeImageEmptyPayload(t *testing.T) {
	client := NewClient("http://127.0.0.1:5005", 5*time.Second)
	if _, err := client.AnalyzeImage(context.Background(), nil); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}

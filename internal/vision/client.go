package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Analyzer 人脸情绪分析接口,便于测试替身
type Analyzer interface {
	AnalyzeImage(ctx context.Context, image []byte) (*FaceResult, error)
}

// Client 人脸分析边车服务的 HTTP 客户端
// 推理模型跑在独立进程里,本服务只做编排
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient 创建边车客户端
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type analyzeRequest struct {
	Image string `json:"image"`
}

type analyzeResponse struct {
	FaceDetected    bool               `json:"face_detected"`
	DominantEmotion string             `json:"dominant_emotion"`
	Confidence      float64            `json:"confidence"`
	Scores          map[string]float64 `json:"scores"`
	Region          *BoundingBox       `json:"region"`
	Error           string             `json:"error"`
}

// AnalyzeImage 把图片发给边车做人脸情绪推理
// 未检测到人脸返回 FaceDetected=false 的结构化结果而不是错误
func (c *Client) AnalyzeImage(ctx context.Context, image []byte) (*FaceResult, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("image payload is empty")
	}

	payload, err := json.Marshal(analyzeRequest{
		Image: base64.StdEncoding.EncodeToString(image),
	})
	if err != nil {
		return nil, fmt.Errorf("encode analyze request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build analyze request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call face analyzer: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read analyzer response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("face analyzer returned status %d: %s", resp.StatusCode, body)
	}

	var decoded analyzeResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode analyzer response: %w", err)
	}
	if decoded.Error != "" {
		return nil, fmt.Errorf("face analyzer error: %s", decoded.Error)
	}

	if !decoded.FaceDetected {
		return &FaceResult{FaceDetected: false}, nil
	}

	result := &FaceResult{
		FaceDetected: true,
		Label:        decoded.DominantEmotion,
		Confidence:   decoded.Confidence,
		Scores:       decoded.Scores,
		Box:          decoded.Region,
	}
	markAmbiguity(result)
	return result, nil
}

package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Translator 谷歌翻译接口客户端
// 走公开的 translate_a/single 端点,无需凭证
type Translator struct {
	endpoint   string
	httpClient *http.Client
}

// NewTranslator 创建翻译客户端
func NewTranslator(endpoint string, timeout time.Duration) *Translator {
	if endpoint == "" {
		endpoint = "https://translate.googleapis.com/translate_a/single"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Translator{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Translate 把文本从 source 翻译到 target
// source 传 "auto" 由服务端自行判断
func (t *Translator) Translate(ctx context.Context, text, source, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	if source == "" {
		source = "auto"
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", source)
	params.Set("tl", target)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build translate request: %w", err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call translate endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read translate response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate endpoint returned status %d", resp.StatusCode)
	}

	return parseTranslatePayload(body)
}

// parseTranslatePayload 解析嵌套数组形式的响应
// 第一层第一个元素是分句数组,逐句取译文拼接
func parseTranslatePayload(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode translate payload: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("translate payload is empty")
	}

	var sentences [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &sentences); err != nil {
		return "", fmt.Errorf("decode translate sentences: %w", err)
	}

	var sb strings.Builder
	for _, sentence := range sentences {
		if len(sentence) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(sentence[0], &part); err != nil {
			continue
		}
		sb.WriteString(part)
	}

	translated := sb.String()
	if translated == "" {
		return "", fmt.Errorf("translate payload contains no text")
	}
	return translated, nil
}

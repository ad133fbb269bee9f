package llm

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"time"

	"cnb.cool/zhiqiangwang/pkg/logx"
	openai "github.com/sashabaranov/go-openai"
)

// Config LLM 配置
type Config struct {
	Model   string `mapstructure:"model"`
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// Client OpenAI 兼容的 LLM 客户端
// Groq 等提供商暴露相同的 chat/completions 接口,只需切换 BaseURL
type Client struct {
	config *Config
	client *openai.Client
}

// NewClient 创建 LLM 客户端
func NewClient(config *Config) *Client {
	clientConfig := openai.DefaultConfig(config.APIKey)

	// 直接使用配置的 BaseURL,不自动添加 /v1
	// 不同的 API 提供商可能有不同的路径格式
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
		logx.Debug("LLM client BaseURL: %s", config.BaseURL)
	}

	// 禁用 HTTP/2,强制使用 HTTP/1.1 以避免 INTERNAL_ERROR
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSNextProto:        make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
	}

	clientConfig.HTTPClient = &http.Client{
		Transport: transport,
		Timeout:   120 * time.Second,
	}

	client := openai.NewClientWithConfig(clientConfig)

	logx.Info("LLM client initialized, model %s", config.Model)

	return &Client{
		config: config,
		client: client,
	}
}

// Model 返回配置的模型名
func (c *Client) Model() string {
	return c.config.Model
}

// CompleteOptions 单次补全的采样参数
type CompleteOptions struct {
	Temperature float32
	MaxTokens   int
	TopP        float32
}

// Complete 发起一次 system+user 两段式的非流式补全
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string, opts CompleteOptions) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}
	if opts.TopP > 0 {
		req.TopP = opts.TopP
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response choices")
	}

	return resp.Choices[0].Message.Content, nil
}

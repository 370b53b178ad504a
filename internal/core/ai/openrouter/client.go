package openrouter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"recipe-finder/internal/core/ai/provider"
	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client OpenRouter API 客戶端（OpenAI 相容格式）
type Client struct {
	client    *resty.Client
	apiKey    string
	model     string
	maxTokens int
	timeout   time.Duration
}

// Request 表示 API 請求
type Request struct {
	Model       string             `json:"model"`
	Messages    []provider.Message `json:"messages"`
	MaxTokens   int                `json:"max_tokens,omitempty"`
	Temperature float64            `json:"temperature"`
	TopP        float64            `json:"top_p,omitempty"`
	TopK        int                `json:"top_k,omitempty"`
}

// Response OpenRouter 響應結構
type Response struct {
	ID      string    `json:"id"`
	Choices []Choice  `json:"choices"`
	Usage   UsageInfo `json:"usage"`
}

// Choice 選擇結構
type Choice struct {
	Message provider.Message `json:"message"`
}

// UsageInfo 使用量信息
type UsageInfo struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Error 表示 API 錯誤
type Error struct {
	Error struct {
		Message string      `json:"message"`
		Type    string      `json:"type"`
		Code    interface{} `json:"code"`
	} `json:"error"`
}

// NewClient 創建新的 OpenRouter 客戶端
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.OpenRouter.BaseURL, "/")).
		SetTimeout(cfg.AI.Timeout).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.OpenRouter.APIKey)).
		SetHeader("HTTP-Referer", "https://recipe-finder.app").
		SetHeader("X-Title", "Recipe Finder")

	return &Client{
		client:    client,
		apiKey:    cfg.OpenRouter.APIKey,
		model:     cfg.OpenRouter.Model,
		maxTokens: cfg.OpenRouter.MaxTokens,
		timeout:   cfg.AI.Timeout,
	}
}

// Generate 生成回應
// OpenAI 格式沒有內容安全欄位，SafetySettings 會被忽略
func (c *Client) Generate(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	if c.apiKey == "" {
		return nil, common.ErrNoCredential
	}

	body := &Request{
		Model:       c.model,
		Messages:    []provider.Message{{Role: "user", Content: req.Prompt}},
		MaxTokens:   c.maxTokens,
		Temperature: req.Temperature,
		TopP:        req.TopP,
		TopK:        req.TopK,
	}
	if req.MaxTokens > 0 {
		body.MaxTokens = req.MaxTokens
	}

	common.LogDebug("Sending request to OpenRouter",
		zap.String("model", body.Model),
		zap.Int("messages", len(body.Messages)),
	)

	var result Response
	var failure Error
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		SetError(&failure).
		Post("/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("failed to send request to OpenRouter: %w", err)
	}

	if resp.IsError() {
		if failure.Error.Message != "" {
			return nil, fmt.Errorf("OpenRouter API returned status %d: %s", resp.StatusCode(), failure.Error.Message)
		}
		return nil, fmt.Errorf("OpenRouter API returned status %d", resp.StatusCode())
	}

	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("no choices in OpenRouter response")
	}

	text := result.Choices[0].Message.Content
	if text == "" {
		return nil, fmt.Errorf("empty content in OpenRouter response")
	}

	out := &provider.Response{Content: text}
	out.Usage.PromptTokens = result.Usage.PromptTokens
	out.Usage.CompletionTokens = result.Usage.CompletionTokens
	out.Usage.TotalTokens = result.Usage.TotalTokens
	return out, nil
}

// GetModel 獲取模型名稱
func (c *Client) GetModel() string {
	return c.model
}

// GetTimeout 獲取請求超時時間
func (c *Client) GetTimeout() time.Duration {
	return c.timeout
}

// Close 關閉客戶端
func (c *Client) Close() error {
	c.client.GetClient().CloseIdleConnections()
	return nil
}

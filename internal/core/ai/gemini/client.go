package gemini

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

// Client Gemini generateContent API 客戶端
type Client struct {
	client  *resty.Client
	apiKey  string
	model   string
	timeout time.Duration

	topP            float64
	topK            int
	maxOutputTokens int
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP,omitempty"`
	TopK            int     `json:"topK,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type generateRequest struct {
	Contents         []content                `json:"contents"`
	SafetySettings   []provider.SafetySetting `json:"safetySettings,omitempty"`
	GenerationConfig generationConfig         `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// NewClient 創建 Gemini 客戶端
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Gemini.BaseURL, "/")).
		SetTimeout(cfg.AI.Timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{
		client:          client,
		apiKey:          cfg.Gemini.APIKey,
		model:           cfg.Gemini.Model,
		timeout:         cfg.AI.Timeout,
		topP:            cfg.Gemini.TopP,
		topK:            cfg.Gemini.TopK,
		maxOutputTokens: cfg.Gemini.MaxOutputTokens,
	}
}

// Generate 呼叫 generateContent 並串接候選回覆的文字
func (c *Client) Generate(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	if c.apiKey == "" {
		return nil, common.ErrNoCredential
	}

	body := generateRequest{
		Contents:       []content{{Role: "user", Parts: []part{{Text: req.Prompt}}}},
		SafetySettings: req.SafetySettings,
		GenerationConfig: generationConfig{
			Temperature:     req.Temperature,
			TopP:            firstFloat(req.TopP, c.topP),
			TopK:            firstInt(req.TopK, c.topK),
			MaxOutputTokens: firstInt(req.MaxTokens, c.maxOutputTokens),
		},
	}

	common.LogDebug("Sending request to Gemini", zap.String("model", c.model))

	var result generateResponse
	var failure apiError
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(body).
		SetResult(&result).
		SetError(&failure).
		Post(fmt.Sprintf("/models/%s:generateContent", c.model))
	if err != nil {
		return nil, fmt.Errorf("failed to send request to Gemini: %w", err)
	}

	if resp.IsError() {
		if failure.Error.Message != "" {
			return nil, fmt.Errorf("Gemini API returned status %d: %s", resp.StatusCode(), failure.Error.Message)
		}
		return nil, fmt.Errorf("Gemini API returned status %d", resp.StatusCode())
	}

	if result.PromptFeedback.BlockReason != "" {
		return nil, fmt.Errorf("Gemini blocked prompt: %s", result.PromptFeedback.BlockReason)
	}
	if len(result.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates in Gemini response")
	}

	var sb strings.Builder
	for _, p := range result.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	if sb.Len() == 0 {
		return nil, fmt.Errorf("empty content in Gemini response (finish reason %q)", result.Candidates[0].FinishReason)
	}

	out := &provider.Response{Content: sb.String()}
	out.Usage.PromptTokens = result.UsageMetadata.PromptTokenCount
	out.Usage.CompletionTokens = result.UsageMetadata.CandidatesTokenCount
	out.Usage.TotalTokens = result.UsageMetadata.TotalTokenCount
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

func firstFloat(v, fallback float64) float64 {
	if v != 0 {
		return v
	}
	return fallback
}

func firstInt(v, fallback int) int {
	if v != 0 {
		return v
	}
	return fallback
}

package provider

import (
	"context"
	"time"
)

// Message 表示與 AI 模型的對話消息
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SafetySetting 內容安全過濾設定
type SafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

// 內容過濾類別
const (
	HarmCategoryHarassment       = "HARM_CATEGORY_HARASSMENT"
	HarmCategoryHateSpeech       = "HARM_CATEGORY_HATE_SPEECH"
	HarmCategorySexuallyExplicit = "HARM_CATEGORY_SEXUALLY_EXPLICIT"
	HarmCategoryDangerousContent = "HARM_CATEGORY_DANGEROUS_CONTENT"

	BlockMediumAndAbove = "BLOCK_MEDIUM_AND_ABOVE"
)

// DefaultSafetySettings 四個類別皆封鎖中度以上內容
func DefaultSafetySettings() []SafetySetting {
	return []SafetySetting{
		{Category: HarmCategoryHarassment, Threshold: BlockMediumAndAbove},
		{Category: HarmCategoryHateSpeech, Threshold: BlockMediumAndAbove},
		{Category: HarmCategorySexuallyExplicit, Threshold: BlockMediumAndAbove},
		{Category: HarmCategoryDangerousContent, Threshold: BlockMediumAndAbove},
	}
}

// Request 表示發送到 AI 提供者的請求
// 零值欄位交由各提供者套用自己的預設
type Request struct {
	Prompt         string
	Temperature    float64
	TopP           float64
	TopK           int
	MaxTokens      int
	SafetySettings []SafetySetting
}

// Response 表示從 AI 提供者收到的響應
type Response struct {
	Content string `json:"content"`
	Usage   struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// Provider 定義 AI 提供者介面
type Provider interface {
	// Generate 生成 AI 響應
	Generate(ctx context.Context, req *Request) (*Response, error)

	// GetModel 獲取當前使用的模型名稱
	GetModel() string

	// GetTimeout 獲取請求超時時間
	GetTimeout() time.Duration

	// Close 關閉提供者連接
	Close() error
}

package video

import (
	"context"
	"fmt"
	"strings"

	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

// Searcher 影片搜尋介面，找不到結果時回傳空字串
type Searcher interface {
	Search(ctx context.Context, query string) (string, error)
}

// YouTubeClient YouTube Data API 搜尋客戶端
type YouTubeClient struct {
	client *resty.Client
	apiKey string
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

// NewYouTubeClient 創建 YouTube 客戶端
func NewYouTubeClient(cfg *config.Config) *YouTubeClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.YouTube.BaseURL, "/")).
		SetTimeout(cfg.YouTube.Timeout)

	return &YouTubeClient{
		client: client,
		apiKey: cfg.YouTube.APIKey,
	}
}

// Search 取回第一個影片結果的 ID
func (c *YouTubeClient) Search(ctx context.Context, query string) (string, error) {
	if c.apiKey == "" {
		return "", common.ErrNoCredential
	}

	var result searchResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":       "snippet",
			"q":          query,
			"type":       "video",
			"maxResults": "1",
			"key":        c.apiKey,
		}).
		SetResult(&result).
		Get("/search")
	if err != nil {
		return "", fmt.Errorf("failed to search YouTube: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("YouTube API returned %d: %s", resp.StatusCode(), resp.Status())
	}

	if len(result.Items) == 0 {
		return "", nil
	}
	return result.Items[0].ID.VideoID, nil
}

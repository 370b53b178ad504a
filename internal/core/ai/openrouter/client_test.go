package openrouter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recipe-finder/internal/core/ai/provider"
	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"
)

func testConfig(baseURL, apiKey string) *config.Config {
	return &config.Config{
		AI: config.AIConfig{Timeout: 5 * time.Second},
		OpenRouter: config.OpenRouterConfig{
			APIKey:    apiKey,
			Model:     "test/model",
			BaseURL:   baseURL,
			MaxTokens: 1024,
		},
	}
}

func TestGenerate(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","choices":[{"message":{"role":"assistant","content":"{\"recipes\":[]}"}}],"usage":{"total_tokens":7}}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL, "secret"))
	resp, err := c.Generate(context.Background(), &provider.Request{Prompt: "hi", Temperature: 0.7})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if resp.Content != `{"recipes":[]}` {
		t.Fatalf("Content = %q", resp.Content)
	}
	if got.Model != "test/model" || got.MaxTokens != 1024 || got.Temperature != 0.7 {
		t.Fatalf("unexpected request: %+v", got)
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != "user" || got.Messages[0].Content != "hi" {
		t.Fatalf("unexpected messages: %+v", got.Messages)
	}
}

func TestGenerateErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"auth"}}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL, "secret"))
	if _, err := c.Generate(context.Background(), &provider.Request{Prompt: "hi"}); err == nil {
		t.Fatalf("Generate() error = nil, want error")
	}
}

func TestGenerateWithoutKey(t *testing.T) {
	c := NewClient(testConfig("http://127.0.0.1:0", ""))
	if _, err := c.Generate(context.Background(), &provider.Request{Prompt: "hi"}); !errors.Is(err, common.ErrNoCredential) {
		t.Fatalf("Generate() error = %v, want ErrNoCredential", err)
	}
}

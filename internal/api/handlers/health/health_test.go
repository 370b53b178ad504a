package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"recipe-finder/internal/core/ai/cache"
	"recipe-finder/internal/core/ai/queue"

	"github.com/gin-gonic/gin"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func serve(h gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestHealthCheckIncludesCacheAndQueue(t *testing.T) {
	store := cache.NewMemoryStore(0, 10)
	defer store.Close()
	h := NewHandler("1.2.3", nil, store, queue.NewManager(3))

	w := serve(h.HealthCheck)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Version != "1.2.3" || resp.Cache == nil || resp.Cache.MaxSize != 10 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Queue == nil || resp.Queue.Workers != 3 {
		t.Fatalf("Queue = %+v", resp.Queue)
	}
}

func TestHealthCheckWithoutMemoryStore(t *testing.T) {
	h := NewHandler("dev", nil, cache.Disabled{}, nil)
	var resp HealthResponse
	if err := json.Unmarshal(serve(h.HealthCheck).Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Cache != nil || resp.Queue != nil {
		t.Fatalf("unexpected sections: %+v", resp)
	}
}

func TestReadinessCheck(t *testing.T) {
	ok := NewHandler("dev", pingFunc(func(context.Context) error { return nil }), nil, nil)
	if w := serve(ok.ReadinessCheck); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	down := NewHandler("dev", pingFunc(func(context.Context) error { return errors.New("down") }), nil, nil)
	if w := serve(down.ReadinessCheck); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
}

func TestLivenessCheck(t *testing.T) {
	if w := serve(NewHandler("dev", nil, nil, nil).LivenessCheck); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

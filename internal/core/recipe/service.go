package recipe

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"recipe-finder/internal/core/ai/cache"
	"recipe-finder/internal/pkg/common"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// minSearchQueryLength 名稱搜尋的最短字數
const minSearchQueryLength = 2

// Enricher 為食譜補上影片資訊
type Enricher interface {
	Enrich(ctx context.Context, recipes []common.Recipe) []common.Recipe
}

// Service 食譜查詢流程：查快取、產生、補影片、寫快取
type Service struct {
	store         cache.Store
	generator     *Generator
	enricher      Enricher
	substitutions *SubstitutionTable

	singleFlight bool
	group        singleflight.Group
}

// NewService 創建新的食譜服務
// store 與 enricher 可為 nil，分別代表不快取與不補影片
func NewService(store cache.Store, generator *Generator, enricher Enricher, substitutions *SubstitutionTable, singleFlight bool) *Service {
	if generator == nil {
		generator = NewGenerator(nil, nil, 0)
	}
	if substitutions == nil {
		substitutions = NewSubstitutionTable()
	}
	return &Service{
		store:         store,
		generator:     generator,
		enricher:      enricher,
		substitutions: substitutions,
		singleFlight:  singleFlight,
	}
}

// FindRecipes 依食材查詢食譜
// 只有輸入錯誤會回傳 error，外部服務失敗一律降級處理
func (s *Service) FindRecipes(ctx context.Context, ingredients []string) (common.RecipeResult, error) {
	ingredients = dropBlank(ingredients)
	if len(ingredients) == 0 {
		return common.RecipeResult{}, common.ErrEmptyIngredients
	}

	key := common.CacheKey(ingredients)

	if result, ok := s.lookup(ctx, key); ok {
		return result, nil
	}

	if !s.singleFlight {
		return s.build(ctx, key, ingredients), nil
	}

	// 共用的產生流程不跟隨單一呼叫端取消，仍受 provider 逾時限制
	detached := context.WithoutCancel(ctx)
	v, _, isShared := s.group.Do(key, func() (interface{}, error) {
		return s.build(detached, key, ingredients), nil
	})
	result := v.(common.RecipeResult)
	if isShared {
		common.LogDebug("Shared in-flight recipe generation", zap.String("key", key))
		return result.Clone(), nil
	}
	return result, nil
}

// lookup 查詢快取，任何錯誤都視為未命中
func (s *Service) lookup(ctx context.Context, key string) (common.RecipeResult, bool) {
	if s.store == nil {
		return common.RecipeResult{}, false
	}

	entry, err := s.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, common.ErrCacheMiss) && !errors.Is(err, common.ErrCacheDisabled) {
			common.LogWarn("Cache lookup failed, treating as miss",
				zap.String("component", "cache"),
				zap.String("key", key),
				zap.Error(err),
			)
		}
		return common.RecipeResult{}, false
	}
	return entry.Result, true
}

// build 產生並補上影片後寫入快取
// ctx 已取消時結果可能是降級內容，只回傳不寫入
func (s *Service) build(ctx context.Context, key string, ingredients []string) common.RecipeResult {
	result := s.generator.Generate(ctx, ingredients)
	result.Recipes = s.enrich(ctx, result.Recipes)

	if err := ctx.Err(); err != nil {
		common.LogDebug("Request cancelled, result not cached",
			zap.String("key", key),
			zap.Error(err),
		)
		return result
	}

	if s.store != nil {
		if err := s.store.Put(ctx, key, result); err != nil {
			common.LogWarn("Cache store failed",
				zap.String("component", "cache"),
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}
	return result
}

func (s *Service) enrich(ctx context.Context, recipes []common.Recipe) []common.Recipe {
	if s.enricher == nil || len(recipes) == 0 {
		return recipes
	}
	return s.enricher.Enrich(ctx, recipes)
}

// SearchByName 以菜名搜尋食譜，不經過快取
func (s *Service) SearchByName(ctx context.Context, query string) (common.RecipeResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return common.RecipeResult{}, common.ErrInvalidQuery
	}
	if utf8.RuneCountInString(query) < minSearchQueryLength {
		return common.RecipeResult{}, common.ErrQueryTooShort
	}

	result := s.generator.Generate(ctx, []string{query})
	result.Recipes = s.enrich(ctx, result.Recipes)
	return result, nil
}

// FindSubstitutes 查詢替代食材
func (s *Service) FindSubstitutes(ctx context.Context, ingredient string) (common.SubstitutionResult, error) {
	ingredient = strings.TrimSpace(ingredient)
	if ingredient == "" {
		return common.SubstitutionResult{}, common.ErrEmptyIngredientName
	}
	return s.substitutions.Substitute(ingredient), nil
}

// Ping 檢查快取是否可用
func (s *Service) Ping(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	return s.store.Ping(ctx)
}

func dropBlank(ingredients []string) []string {
	out := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		if strings.TrimSpace(ing) != "" {
			out = append(out, ing)
		}
	}
	return out
}

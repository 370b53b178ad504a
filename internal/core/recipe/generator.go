package recipe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recipe-finder/internal/core/ai/provider"
	"recipe-finder/internal/pkg/common"

	"go.uber.org/zap"
)

// defaultGeneratorSuggestions 沒有輸入食材或模型未提供建議時使用
var defaultGeneratorSuggestions = []string{
	"دجاج", "لحم", "سمك", "بطاطس", "أرز",
	"معكرونة", "بصل", "طماطم", "بيض", "جبنة",
}

// aiRecipeReply 模型回覆的 JSON 結構
type aiRecipeReply struct {
	Recipes []struct {
		Title        string   `json:"title"`
		Description  string   `json:"description"`
		Ingredients  []string `json:"ingredients"`
		Instructions []string `json:"instructions"`
	} `json:"recipes"`
	SuggestedIngredients []string `json:"suggestedIngredients"`
}

// Generator 透過 AI 產生食譜，任何失敗都改用備援表
type Generator struct {
	provider    provider.Provider
	matcher     *FallbackMatcher
	temperature float64
}

// NewGenerator 創建食譜產生器，provider 為 nil 時只使用備援表
func NewGenerator(p provider.Provider, matcher *FallbackMatcher, temperature float64) *Generator {
	if matcher == nil {
		matcher = NewFallbackMatcher()
	}
	return &Generator{
		provider:    p,
		matcher:     matcher,
		temperature: temperature,
	}
}

// Generate 產生食譜，永遠回傳結果
func (g *Generator) Generate(ctx context.Context, ingredients []string) common.RecipeResult {
	if len(ingredients) == 0 {
		return common.RecipeResult{
			Recipes:              []common.Recipe{},
			SuggestedIngredients: append([]string(nil), defaultGeneratorSuggestions...),
		}
	}

	if g.provider == nil {
		return g.matcher.Match(ingredients)
	}

	result, err := g.generateWithAI(ctx, ingredients)
	if err != nil {
		if errors.Is(err, common.ErrNoCredential) {
			common.LogDebug("AI credential not configured, using fallback recipes")
		} else {
			common.LogWarn("AI recipe generation failed, using fallback recipes",
				zap.String("component", "generator"),
				zap.Strings("ingredients", ingredients),
				zap.Error(err),
			)
		}
		return g.matcher.Match(ingredients)
	}
	return result
}

func (g *Generator) generateWithAI(ctx context.Context, ingredients []string) (common.RecipeResult, error) {
	if timeout := g.provider.GetTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := g.provider.Generate(ctx, &provider.Request{
		Prompt:         BuildRecipePrompt(ingredients),
		Temperature:    g.temperature,
		SafetySettings: provider.DefaultSafetySettings(),
	})
	if errors.Is(err, common.ErrNoCredential) {
		return common.RecipeResult{}, err
	}
	common.LogAICall(g.provider.GetModel(), time.Since(start), err)
	if err != nil {
		return common.RecipeResult{}, err
	}

	return parseRecipeReply(resp.Content)
}

// parseRecipeReply 從模型的自由文字中取出 JSON 並轉成 RecipeResult
func parseRecipeReply(text string) (common.RecipeResult, error) {
	raw, ok := common.ExtractFirstJSONObject(text)
	if !ok {
		return common.RecipeResult{}, common.ErrNoJSON
	}

	var reply aiRecipeReply
	if err := common.ParseJSON(raw, &reply); err != nil {
		return common.RecipeResult{}, fmt.Errorf("failed to parse AI reply: %w", err)
	}

	result := common.RecipeResult{
		Recipes:              make([]common.Recipe, 0, len(reply.Recipes)),
		SuggestedIngredients: reply.SuggestedIngredients,
	}
	for _, r := range reply.Recipes {
		recipe := common.Recipe{
			Title:        r.Title,
			Description:  r.Description,
			Ingredients:  r.Ingredients,
			Instructions: r.Instructions,
		}
		if recipe.Ingredients == nil {
			recipe.Ingredients = []string{}
		}
		if recipe.Instructions == nil {
			recipe.Instructions = []string{}
		}
		result.Recipes = append(result.Recipes, recipe)
	}
	if len(result.SuggestedIngredients) == 0 {
		result.SuggestedIngredients = append([]string(nil), defaultGeneratorSuggestions...)
	}
	return result, nil
}

package common

import (
	"sort"
	"strings"
)

// Recipe 食譜
// ingredients 與 instructions 的順序即顯示順序
type Recipe struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	VideoID      string   `json:"videoId,omitempty"`
}

// RecipeResult 食譜查詢結果
type RecipeResult struct {
	Recipes              []Recipe `json:"recipes"`
	SuggestedIngredients []string `json:"suggestedIngredients"`
}

// Substitute 替代食材
type Substitute struct {
	Name  string `json:"name"`
	Ratio string `json:"ratio"`
	Notes string `json:"notes,omitempty"`
}

// SubstitutionResult 替代食材查詢結果
type SubstitutionResult struct {
	OriginalIngredient string       `json:"originalIngredient"`
	Substitutes        []Substitute `json:"substitutes"`
}

// Clone 深拷貝食譜，避免呼叫端修改共用的靜態資料
func (r Recipe) Clone() Recipe {
	out := r
	out.Ingredients = append([]string{}, r.Ingredients...)
	out.Instructions = append([]string{}, r.Instructions...)
	return out
}

// Clone 深拷貝查詢結果
func (r RecipeResult) Clone() RecipeResult {
	out := RecipeResult{
		Recipes:              make([]Recipe, len(r.Recipes)),
		SuggestedIngredients: append([]string{}, r.SuggestedIngredients...),
	}
	for i, recipe := range r.Recipes {
		out.Recipes[i] = recipe.Clone()
	}
	return out
}

// Clone 深拷貝替代食材結果
func (r SubstitutionResult) Clone() SubstitutionResult {
	return SubstitutionResult{
		OriginalIngredient: r.OriginalIngredient,
		Substitutes:        append([]Substitute(nil), r.Substitutes...),
	}
}

// NormalizeIngredient 去除前後空白並轉為小寫
func NormalizeIngredient(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeIngredients 逐一正規化食材名稱，保留原始順序
func NormalizeIngredients(ingredients []string) []string {
	out := make([]string, len(ingredients))
	for i, ing := range ingredients {
		out[i] = NormalizeIngredient(ing)
	}
	return out
}

// CacheKey 產生食材簽章：正規化、排序後以逗號串接
func CacheKey(ingredients []string) string {
	normalized := NormalizeIngredients(ingredients)
	sort.Strings(normalized)
	return strings.Join(normalized, ",")
}

// FormatIngredients 將食材列表格式化為 prompt 使用的字串
func FormatIngredients(ingredients []string) string {
	return strings.Join(ingredients, ", ")
}

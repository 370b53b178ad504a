package recipe

import (
	"strings"

	"recipe-finder/internal/pkg/common"

	"go.uber.org/zap"
)

type fallbackEntry struct {
	key    string
	parts  []string
	result common.RecipeResult
}

// FallbackMatcher 以靜態表比對食材，AI 不可用時使用
type FallbackMatcher struct {
	entries []fallbackEntry
	byKey   map[string]int
}

// NewFallbackMatcher 載入內建備援表
func NewFallbackMatcher() *FallbackMatcher {
	m := &FallbackMatcher{
		entries: make([]fallbackEntry, 0, len(fallbackTable)),
		byKey:   make(map[string]int, len(fallbackTable)),
	}
	for _, row := range fallbackTable {
		m.byKey[row.key] = len(m.entries)
		m.entries = append(m.entries, fallbackEntry{
			key:    row.key,
			parts:  strings.Split(row.key, ","),
			result: row.result,
		})
	}
	return m
}

// Match 依序嘗試完全比對、單一食材比對、子集合比對與部分比對
// 永遠回傳結果，不會失敗
func (m *FallbackMatcher) Match(ingredients []string) common.RecipeResult {
	normalized := common.NormalizeIngredients(ingredients)
	key := common.CacheKey(ingredients)

	if i, ok := m.byKey[key]; ok {
		common.LogDebug("Fallback exact match", zap.String("key", key))
		return m.entries[i].result.Clone()
	}

	if len(normalized) == 1 {
		if i, ok := m.byKey[normalized[0]]; ok {
			common.LogDebug("Fallback single ingredient match", zap.String("key", normalized[0]))
			return m.entries[i].result.Clone()
		}
	}

	for _, ing := range normalized {
		if i, ok := m.byKey[ing]; ok {
			common.LogDebug("Fallback ingredient key match", zap.String("key", ing))
			return m.entries[i].result.Clone()
		}
	}

	for _, e := range m.entries {
		if allPartsMatch(e.parts, normalized) {
			common.LogDebug("Fallback subset match", zap.String("key", e.key))
			return e.result.Clone()
		}
	}

	for _, e := range m.entries {
		if anyPartMatches(e.parts, normalized) {
			common.LogDebug("Fallback partial match", zap.String("key", e.key))
			return e.result.Clone()
		}
	}

	common.LogDebug("Fallback no match", zap.String("key", key))
	return common.RecipeResult{
		Recipes:              []common.Recipe{},
		SuggestedIngredients: append([]string(nil), defaultFallbackSuggestions...),
	}
}

// substringMatch 任一方包含另一方即視為相符
func substringMatch(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func partMatches(part string, inputs []string) bool {
	for _, in := range inputs {
		if substringMatch(in, part) {
			return true
		}
	}
	return false
}

func allPartsMatch(parts, inputs []string) bool {
	for _, p := range parts {
		if !partMatches(p, inputs) {
			return false
		}
	}
	return true
}

func anyPartMatches(parts, inputs []string) bool {
	for _, p := range parts {
		if partMatches(p, inputs) {
			return true
		}
	}
	return false
}

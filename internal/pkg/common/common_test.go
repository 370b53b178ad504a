package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestCacheKey(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
	}{
		{"permutation", []string{"طماطم", "ثوم", "بصل"}, []string{"بصل", "طماطم", "ثوم"}},
		{"case and whitespace", []string{" Tomato", "onion "}, []string{"ONION", "tomato"}},
		{"duplicates kept", []string{"بيض", "بيض"}, []string{"بيض", " بيض"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if CacheKey(tt.a) != CacheKey(tt.b) {
				t.Fatalf("CacheKey(%q) = %q, CacheKey(%q) = %q", tt.a, CacheKey(tt.a), tt.b, CacheKey(tt.b))
			}
		})
	}

	if got := CacheKey([]string{"طماطم", "ثوم", "بصل"}); got != "بصل,ثوم,طماطم" {
		t.Fatalf("CacheKey = %q, want بصل,ثوم,طماطم", got)
	}
	if got := CacheKey([]string{"بيض", "بيض"}); got != "بيض,بيض" {
		t.Fatalf("CacheKey = %q, want duplicates preserved", got)
	}
}

func TestExtractFirstJSONObject(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"bare", `{"a":1}`, `{"a":1}`, true},
		{"prose around", "Sure!\n{\"a\":{\"b\":2}}\nEnjoy", `{"a":{"b":2}}`, true},
		{"braces in string", `x {"t":"a } b { c"} y`, `{"t":"a } b { c"}`, true},
		{"escaped quote", `{"t":"say \"}\""}`, `{"t":"say \"}\""}`, true},
		{"first of two", `{"a":1} {"b":2}`, `{"a":1}`, true},
		{"no object", "no json here", "", false},
		{"unbalanced", `{"a": {"b": 1}`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractFirstJSONObject(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("ExtractFirstJSONObject(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseJSONRejectsTrailingData(t *testing.T) {
	var v map[string]interface{}
	if err := ParseJSON(`{"a":1}`, &v); err != nil {
		t.Fatalf("ParseJSON error: %v", err)
	}
	if err := ParseJSON(`{"a":1} {"b":2}`, &v); err == nil {
		t.Fatalf("expected error for trailing data")
	}
}

func TestAsCustomError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", ErrQueryTooShort)
	ce, ok := AsCustomError(wrapped)
	if !ok || ce.Status != http.StatusBadRequest || ce.Code != "QUERY_TOO_SHORT" {
		t.Fatalf("AsCustomError(wrapped) = %+v, %v", ce, ok)
	}

	ce, ok = AsCustomError(errors.New("boom"))
	if ok || ce.Status != http.StatusInternalServerError {
		t.Fatalf("AsCustomError(plain) = %+v, %v", ce, ok)
	}

	inner := errors.New("inner")
	if !errors.Is(NewError("X", "x", http.StatusTeapot, inner), inner) {
		t.Fatalf("CustomError should unwrap to its cause")
	}
}

func TestRecipeResultCloneIsDeep(t *testing.T) {
	orig := RecipeResult{
		Recipes:              []Recipe{{Title: "a", Ingredients: []string{"x"}, Instructions: []string{}}},
		SuggestedIngredients: []string{"s"},
	}
	c := orig.Clone()
	c.Recipes[0].Ingredients[0] = "changed"
	c.SuggestedIngredients[0] = "changed"

	if orig.Recipes[0].Ingredients[0] != "x" || orig.SuggestedIngredients[0] != "s" {
		t.Fatalf("Clone shares backing arrays")
	}
	if c.Recipes[0].Instructions == nil {
		t.Fatalf("Clone turned an empty slice into nil")
	}
}

func TestFilterFieldsDropsSecrets(t *testing.T) {
	fields := filterFields([]zap.Field{
		zap.String("gemini_api_key", "k"),
		zap.String("redis_password", "p"),
		zap.String("client_secret", "s"),
		zap.String("model", "m"),
	})
	if len(fields) != 1 || fields[0].Key != "model" {
		t.Fatalf("filterFields = %v", fields)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"WARN":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"":      zapcore.InfoLevel,
		"loud":  zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestMaskAPIKey(t *testing.T) {
	if got := MaskAPIKey("short"); got != "****" {
		t.Fatalf("MaskAPIKey(short) = %q", got)
	}
	if got := MaskAPIKey("AIzaSyABCDEFGH1234"); got != "AIza...1234" {
		t.Fatalf("MaskAPIKey = %q", got)
	}
}

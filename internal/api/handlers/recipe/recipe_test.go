package recipe

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"recipe-finder/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

type fakeFinder struct {
	result common.RecipeResult
	err    error
	got    []string
}

func (f *fakeFinder) FindRecipes(_ context.Context, ingredients []string) (common.RecipeResult, error) {
	f.got = ingredients
	return f.result, f.err
}

func (f *fakeFinder) SearchByName(_ context.Context, query string) (common.RecipeResult, error) {
	if len([]rune(strings.TrimSpace(query))) < 2 {
		return common.RecipeResult{}, common.ErrQueryTooShort
	}
	return f.result, f.err
}

func (f *fakeFinder) FindSubstitutes(_ context.Context, ingredient string) (common.SubstitutionResult, error) {
	if ingredient == "" {
		return common.SubstitutionResult{}, common.ErrEmptyIngredientName
	}
	return common.SubstitutionResult{OriginalIngredient: ingredient, Substitutes: []common.Substitute{{Name: "x", Ratio: "1:1"}}}, nil
}

func newTestRouter(f Finder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(f)
	r := gin.New()
	r.POST("/api/recipes", h.HandleFindRecipes)
	r.GET("/api/recipes/search", h.HandleSearchByName)
	r.GET("/api/substitutes", h.HandleSubstitutes)
	return r
}

func do(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestHandleFindRecipes(t *testing.T) {
	f := &fakeFinder{result: common.RecipeResult{
		Recipes:              []common.Recipe{{Title: "بيض مقلي", Ingredients: []string{"بيض"}, Instructions: []string{"اقلي"}}},
		SuggestedIngredients: []string{"جبنة"},
	}}
	w := do(newTestRouter(f), http.MethodPost, "/api/recipes", `{"ingredients":["بيض"]}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp RecipesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Recipes) != 1 || resp.Message != "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(f.got) != 1 || f.got[0] != "بيض" {
		t.Fatalf("finder got %v", f.got)
	}
}

func TestHandleFindRecipesEmptyResult(t *testing.T) {
	f := &fakeFinder{result: common.RecipeResult{Recipes: []common.Recipe{}}}
	w := do(newTestRouter(f), http.MethodPost, "/api/recipes", `{"ingredients":["جزر"]}`)

	var resp RecipesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != emptyResultMessage {
		t.Fatalf("Message = %q", resp.Message)
	}
	if len(resp.SuggestedIngredients) != len(defaultRouteSuggestions) {
		t.Fatalf("SuggestedIngredients = %v", resp.SuggestedIngredients)
	}
}

func TestHandleFindRecipesBadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
	}{
		{"not json", `ingredients`, nil},
		{"non-string items", `{"ingredients":[1,2]}`, nil},
		{"empty list", `{"ingredients":[]}`, common.ErrEmptyIngredients},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeFinder{err: tt.err}
			w := do(newTestRouter(f), http.MethodPost, "/api/recipes", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			var resp common.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Code != common.ErrEmptyIngredients.Code {
				t.Fatalf("Code = %q", resp.Code)
			}
		})
	}
}

func TestHandleFindRecipesUnexpectedError(t *testing.T) {
	f := &fakeFinder{err: context.Canceled}
	w := do(newTestRouter(f), http.MethodPost, "/api/recipes", `{"ingredients":["بيض"]}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestHandleSearchByName(t *testing.T) {
	f := &fakeFinder{result: common.RecipeResult{Recipes: []common.Recipe{{Title: "كشري"}}, SuggestedIngredients: []string{"عدس"}}}
	r := newTestRouter(f)

	if w := do(r, http.MethodGet, "/api/recipes/search?query=%D9%83", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("short query status = %d, want 400", w.Code)
	}
	if w := do(r, http.MethodGet, "/api/recipes/search?query=%D9%83%D8%B4%D8%B1%D9%8A", ""); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestHandleSubstitutes(t *testing.T) {
	r := newTestRouter(&fakeFinder{})

	if w := do(r, http.MethodGet, "/api/substitutes", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("missing ingredient status = %d, want 400", w.Code)
	}

	w := do(r, http.MethodGet, "/api/substitutes?ingredient=milk", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp common.SubstitutionResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.OriginalIngredient != "milk" {
		t.Fatalf("OriginalIngredient = %q", resp.OriginalIngredient)
	}
}

package recipe

import (
	"context"
	"net/http"

	"recipe-finder/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// emptyResultMessage 找不到食譜時附給使用者的提示
const emptyResultMessage = "لم نتمكن من إيجاد وصفات مناسبة للمكونات المدخلة. حاول إضافة المزيد من المكونات الأساسية."

// defaultRouteSuggestions 結果沒有建議食材時補上的清單
var defaultRouteSuggestions = []string{
	"طماطم", "بصل", "بطاطس", "دجاج", "أرز",
	"ثوم", "زيت زيتون", "بيض", "جزر", "فلفل",
}

// Finder 食譜查詢服務
type Finder interface {
	FindRecipes(ctx context.Context, ingredients []string) (common.RecipeResult, error)
	SearchByName(ctx context.Context, query string) (common.RecipeResult, error)
	FindSubstitutes(ctx context.Context, ingredient string) (common.SubstitutionResult, error)
}

// FindRecipesRequest 依食材查詢食譜
type FindRecipesRequest struct {
	Ingredients []string `json:"ingredients"`
}

// RecipesResponse 食譜查詢響應
type RecipesResponse struct {
	common.RecipeResult
	Message string `json:"message,omitempty"`
}

// Handler 食譜處理程序
type Handler struct {
	finder Finder
}

// NewHandler 創建新的食譜處理程序
func NewHandler(finder Finder) *Handler {
	return &Handler{finder: finder}
}

// HandleFindRecipes 依食材查詢食譜
func (h *Handler) HandleFindRecipes(c *gin.Context) {
	requestID := requestIDFrom(c)

	var req FindRecipesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		writeError(c, common.ErrEmptyIngredients)
		return
	}

	common.LogInfo("開始處理食譜查詢",
		zap.String("request_id", requestID),
		zap.Strings("ingredients", req.Ingredients),
	)

	result, err := h.finder.FindRecipes(c.Request.Context(), req.Ingredients)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(result))
}

// HandleSearchByName 以菜名搜尋食譜
func (h *Handler) HandleSearchByName(c *gin.Context) {
	query := c.Query("query")
	common.LogInfo("開始處理菜名搜尋",
		zap.String("request_id", requestIDFrom(c)),
		zap.String("query", query),
	)

	result, err := h.finder.SearchByName(c.Request.Context(), query)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(result))
}

// HandleSubstitutes 查詢替代食材
func (h *Handler) HandleSubstitutes(c *gin.Context) {
	result, err := h.finder.FindSubstitutes(c.Request.Context(), c.Query("ingredient"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func toResponse(result common.RecipeResult) RecipesResponse {
	resp := RecipesResponse{RecipeResult: result}
	if resp.Recipes == nil {
		resp.Recipes = []common.Recipe{}
	}
	if len(resp.Recipes) == 0 {
		resp.Message = emptyResultMessage
	}
	if len(resp.SuggestedIngredients) == 0 {
		resp.SuggestedIngredients = append([]string(nil), defaultRouteSuggestions...)
	}
	return resp
}

// writeError 將錯誤轉為統一格式，非預期錯誤一律回傳 500
func writeError(c *gin.Context, err error) {
	ce, ok := common.AsCustomError(err)
	if !ok {
		common.LogError("Unexpected handler error",
			zap.Error(err),
			zap.String("request_id", requestIDFrom(c)),
		)
	}
	c.JSON(ce.Status, common.ErrorResponse{
		Code:    ce.Code,
		Message: ce.Message,
	})
}

func requestIDFrom(c *gin.Context) string {
	if id := requestid.Get(c); id != "" {
		return id
	}
	id := common.GenerateUUID()
	c.Header("X-Request-ID", id)
	return id
}

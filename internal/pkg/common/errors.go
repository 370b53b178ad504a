package common

import (
	"errors"
	"net/http"
)

// ErrorResponse 定義 API 錯誤響應結構
type ErrorResponse struct {
	Code    string `json:"code"`              // 錯誤代碼
	Message string `json:"message"`           // 錯誤信息
	Details string `json:"details,omitempty"` // 詳細信息（僅在開發模式顯示）
}

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Message string // 錯誤信息
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap 支援 errors.Is / errors.As
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewError 創建新的自定義錯誤
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// AsCustomError 取出自定義錯誤，非自定義錯誤一律視為內部錯誤
func AsCustomError(err error) (*CustomError, bool) {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce, true
	}
	return ErrInternalError, false
}

// 預定義錯誤代碼
const (
	// 客戶端錯誤 (4xx)
	ErrCodeNotFound        = "NOT_FOUND"         // 404
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS" // 429

	// 服務器錯誤 (5xx)
	ErrCodeInternalError      = "INTERNAL_ERROR"      // 500
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE" // 503
)

// 預定義錯誤
var (
	// 客戶端錯誤
	ErrNotFound        = NewError(ErrCodeNotFound, "Resource not found", http.StatusNotFound, nil)
	ErrTooManyRequests = NewError(ErrCodeTooManyRequests, "Too many requests", http.StatusTooManyRequests, nil)

	// 服務器錯誤
	ErrInternalError      = NewError(ErrCodeInternalError, "An error occurred while processing your request.", http.StatusInternalServerError, nil)
	ErrServiceUnavailable = NewError(ErrCodeServiceUnavailable, "Service temporarily unavailable", http.StatusServiceUnavailable, nil)

	// 業務錯誤
	ErrEmptyIngredients    = NewError("INVALID_INGREDIENTS", "Invalid ingredients. Please provide an array of ingredients.", http.StatusBadRequest, nil)
	ErrEmptyIngredientName = NewError("INVALID_INGREDIENT", "Missing or invalid ingredient parameter", http.StatusBadRequest, nil)
	ErrInvalidQuery        = NewError("INVALID_QUERY", "Missing or invalid query parameter", http.StatusBadRequest, nil)
	ErrQueryTooShort       = NewError("QUERY_TOO_SHORT", "Query must be at least 2 characters long", http.StatusBadRequest, nil)
)

// 內部哨兵錯誤，不會回傳給用戶端
var (
	ErrCacheMiss     = errors.New("cache miss")
	ErrCacheDisabled = errors.New("cache disabled")
	ErrNoCredential  = errors.New("api credential not configured")
	ErrNoJSON        = errors.New("no JSON object found in response")
)

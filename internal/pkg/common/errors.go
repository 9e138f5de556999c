package common

import (
	"net/http"
)

// ErrorResponse 定義 API 錯誤響應結構
type ErrorResponse struct {
	Code    string `json:"code"`              // 錯誤代碼
	Message string `json:"message"`           // 錯誤信息
	Hint    string `json:"hint,omitempty"`    // 給使用者的補救建議
	Details string `json:"details,omitempty"` // 詳細信息（僅在開發模式顯示）
}

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Message string // 錯誤信息
	Hint    string // 補救建議（可為空）
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap 回傳原始錯誤
func (e *CustomError) Unwrap() error {
	return e.Err
}

// Is 以錯誤代碼判斷等價，讓 errors.Is 可以比對預定義錯誤
func (e *CustomError) Is(target error) bool {
	t, ok := target.(*CustomError)
	return ok && t.Code == e.Code
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

// WithErr 複製一份錯誤並附上原始錯誤，保持預定義錯誤不被修改
func (e *CustomError) WithErr(err error) *CustomError {
	clone := *e
	clone.Err = err
	return &clone
}

// WithHint 複製一份錯誤並附上補救建議
func (e *CustomError) WithHint(hint string) *CustomError {
	clone := *e
	clone.Hint = hint
	return &clone
}

// 預定義錯誤代碼
const (
	// 客戶端錯誤 (4xx)
	ErrCodeInvalidRequest    = "INVALID_REQUEST"     // 400
	ErrCodeUnsupportedSource = "UNSUPPORTED_SOURCE"  // 400
	ErrCodeInputTooShort     = "INPUT_TOO_SHORT"     // 400
	ErrCodeNoContent         = "NO_CONTENT_EXTRACTED" // 422
	ErrCodeRequestTimeout    = "REQUEST_TIMEOUT"      // 408
	ErrCodeTooManyRequests   = "TOO_MANY_REQUESTS"    // 429

	// 服務器錯誤 (5xx)
	ErrCodeInternalError        = "INTERNAL_ERROR"            // 500
	ErrCodeNoProvider           = "NO_PROVIDER_CONFIGURED"    // 503
	ErrCodeProviderRequest      = "PROVIDER_REQUEST_FAILED"   // 502
	ErrCodeInvalidProviderReply = "INVALID_PROVIDER_RESPONSE" // 502
)

// 預定義錯誤
var (
	// 客戶端錯誤
	ErrInvalidRequest  = NewError(ErrCodeInvalidRequest, "無效的請求", http.StatusBadRequest, nil)
	ErrRequestTimeout  = NewError(ErrCodeRequestTimeout, "請求超時", http.StatusRequestTimeout, nil)
	ErrTooManyRequests = NewError(ErrCodeTooManyRequests, "請求過於頻繁", http.StatusTooManyRequests, nil)

	// 匯入管線錯誤
	ErrUnsupportedSource       = NewError(ErrCodeUnsupportedSource, "不支援的來源類型", http.StatusBadRequest, nil)
	ErrInputTooShort           = NewError(ErrCodeInputTooShort, "文字內容太短，無法進行解析", http.StatusBadRequest, nil)
	ErrNoContentExtracted      = NewError(ErrCodeNoContent, "無法從這個連結取得內容", http.StatusUnprocessableEntity, nil)
	ErrNoProviderConfigured    = NewError(ErrCodeNoProvider, "尚未設定任何 AI 供應商", http.StatusServiceUnavailable, nil)
	ErrProviderRequestFailed   = NewError(ErrCodeProviderRequest, "AI 供應商請求失敗", http.StatusBadGateway, nil)
	ErrInvalidProviderResponse = NewError(ErrCodeInvalidProviderReply, "AI 供應商回應無法解析", http.StatusBadGateway, nil)

	// 服務器錯誤
	ErrInternalError = NewError(ErrCodeInternalError, "服務器內部錯誤", http.StatusInternalServerError, nil)
)

package admin

import (
	"fmt"
	"sort"
	"strings"
)

// ===========================
// Admin Domain 錯誤定義
// ===========================

// ErrorCode Admin Domain 錯誤代碼
type ErrorCode string

// Admin Domain 錯誤代碼常量
const (
	ErrCodeInvalidAdminID     ErrorCode = "INVALID_ADMIN_ID"
	ErrCodePermissionDenied   ErrorCode = "PERMISSION_DENIED"
	ErrCodeRepositoryError    ErrorCode = "ADMIN_REPOSITORY_ERROR"
	ErrCodeSourceUnavailable  ErrorCode = "ADMIN_SOURCE_UNAVAILABLE"
	ErrCodeInvalidAdminSource ErrorCode = "INVALID_ADMIN_SOURCE"
)

// DomainError Admin Domain 錯誤結構
//
// 設計原則：
// 1. 使用結構化錯誤（ErrorCode + Message + Context）
// 2. 支援錯誤包裝（errors.Is 按錯誤代碼比較）
// 3. 提供上下文信息（WithContext 方法）
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

// Error 實作 error 介面
func (e *DomainError) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return e.Message + " (context: " + formatContext(e.Context) + ")"
}

// WithContext 添加上下文信息
//
// 使用範例：
//   return ErrPermissionDenied.WithContext("user_id", userID.String(), "command", "add_points")
func (e *DomainError) WithContext(keyValues ...interface{}) *DomainError {
	if len(keyValues)%2 != 0 {
		panic("WithContext requires even number of arguments (key-value pairs)")
	}

	newErr := &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Context: make(map[string]interface{}, len(e.Context)+len(keyValues)/2),
	}

	for k, v := range e.Context {
		newErr.Context[k] = v
	}

	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			panic("WithContext keys must be strings")
		}
		newErr.Context[key] = keyValues[i+1]
	}

	return newErr
}

// Is 實作 errors.Is 比較
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// formatContext 格式化上下文信息（按 key 排序，輸出穩定）
func formatContext(context map[string]interface{}) string {
	keys := make([]string, 0, len(context))
	for k := range context {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+fmt.Sprint(context[k]))
	}
	return strings.Join(parts, ", ")
}

// ===========================
// Admin Domain 錯誤實例
// ===========================

var (
	// ErrInvalidAdminID 管理員 ID 無效（零值）
	ErrInvalidAdminID = &DomainError{
		Code:    ErrCodeInvalidAdminID,
		Message: "管理員 ID 無效",
	}

	// ErrPermissionDenied 非管理員執行特權命令
	ErrPermissionDenied = &DomainError{
		Code:    ErrCodePermissionDenied,
		Message: "沒有權限執行此命令",
	}

	// ErrRepositoryError 管理員名單存取失敗
	ErrRepositoryError = &DomainError{
		Code:    ErrCodeRepositoryError,
		Message: "管理員名單存取失敗",
	}

	// ErrSourceUnavailable 無法從聊天平台取得管理員名單
	//
	// 觸發條件：
	// - 網路錯誤
	// - 設定的群組 ID 無效或機器人不在群組中
	ErrSourceUnavailable = &DomainError{
		Code:    ErrCodeSourceUnavailable,
		Message: "無法取得群組管理員名單",
	}

	// ErrInvalidAdminSource 設定的群組 ID 格式無效
	ErrInvalidAdminSource = &DomainError{
		Code:    ErrCodeInvalidAdminSource,
		Message: "群組 ID 格式無效",
	}
)

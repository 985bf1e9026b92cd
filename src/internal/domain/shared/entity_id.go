package shared

import (
	"strconv"
	"strings"
)

// ===========================
// EntityID[T] 泛型實體 ID
// ===========================

// EntityID 是一個泛型實體 ID 值對象
//
// 聊天平台的用戶 ID 是 64 位整數，因此底層使用 int64。
// 泛型參數 T 只是標記類型，讓不同實體的 ID 在編譯期無法混用。
//
// 零值表示「未設定」，不是有效的 ID。
type EntityID[T any] struct {
	value int64
}

// NewEntityID 從平台提供的整數建立實體 ID
//
// 零值是保留值，建構後可用 IsEmpty() 判斷。
func NewEntityID[T any](value int64) EntityID[T] {
	return EntityID[T]{value: value}
}

// EntityIDFromString 從字串解析實體 ID
//
// 參數：
//   s - 十進位整數字串（允許前後空白）
//   errTemplate - 解析失敗時返回的錯誤（由調用者提供）
//
// 返回：
//   EntityID[T] - 解析成功的實體 ID
//   error - 解析失敗或值為 0 時返回 errTemplate（附帶上下文）
func EntityIDFromString[T any](s string, errTemplate error) (EntityID[T], error) {
	value, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return EntityID[T]{}, withContext(errTemplate, "input", s, "parse_error", err.Error())
	}
	if value == 0 {
		return EntityID[T]{}, withContext(errTemplate, "input", s, "reason", "id cannot be zero")
	}
	return EntityID[T]{value: value}, nil
}

// withContext 如果錯誤模板支持 WithContext（如 DomainError），附加上下文
func withContext(errTemplate error, keyValues ...interface{}) error {
	if domainErr, ok := errTemplate.(interface {
		WithContext(keyValues ...interface{}) error
	}); ok {
		return domainErr.WithContext(keyValues...)
	}
	return errTemplate
}

// Int64 返回原始整數值（持久化與平台 API 使用）
func (e EntityID[T]) Int64() int64 {
	return e.value
}

// String 轉換為十進位字串表示
func (e EntityID[T]) String() string {
	return strconv.FormatInt(e.value, 10)
}

// Equals 比較兩個 EntityID 是否相等
func (e EntityID[T]) Equals(other EntityID[T]) bool {
	return e.value == other.value
}

// IsEmpty 判斷是否為空 ID（零值）
func (e EntityID[T]) IsEmpty() bool {
	return e.value == 0
}

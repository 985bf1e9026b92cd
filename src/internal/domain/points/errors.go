package points

import "fmt"

// ===========================
// 錯誤代碼定義
// ===========================

// ErrorCode 錯誤代碼類型
type ErrorCode string

// 錯誤代碼常量
const (
	// 積分數量相關
	ErrCodeNegativePointsAmount ErrorCode = "POINTS_NEGATIVE"
	ErrCodeInvalidPointsAmount  ErrorCode = "POINTS_INVALID"
	ErrCodeInsufficientPoints   ErrorCode = "POINTS_INSUFFICIENT"
	ErrCodePointsOverflow       ErrorCode = "POINTS_OVERFLOW"

	// 帳戶相關
	ErrCodeInvalidUserID ErrorCode = "USER_ID_INVALID"

	// 開箱相關
	ErrCodeInvalidReward ErrorCode = "BOX_REWARD_INVALID"
)

// ===========================
// DomainError 結構
// ===========================

// DomainError 領域錯誤
// 設計原則：
// 1. 包含結構化的錯誤代碼（用於回覆訊息映射）
// 2. 支持上下文信息（用於調試和日誌）
// 3. 不可變性（創建後不可修改）
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

// Error 實現 error 接口
func (e *DomainError) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s (context: %+v)", e.Code, e.Message, e.Context)
}

// WithContext 添加上下文信息（返回新的錯誤實例，保持不可變性）
func (e *DomainError) WithContext(keyValues ...interface{}) error {
	if len(keyValues)%2 != 0 {
		panic("WithContext requires even number of arguments (key-value pairs)")
	}

	ctx := make(map[string]interface{}, len(e.Context)+len(keyValues)/2)

	for k, v := range e.Context {
		ctx[k] = v
	}

	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			panic(fmt.Sprintf("context key must be string, got %T", keyValues[i]))
		}
		ctx[key] = keyValues[i+1]
	}

	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Context: ctx,
	}
}

// Is 實現 errors.Is 接口（用於錯誤類型判斷）
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// ===========================
// 預定義錯誤
// ===========================

// 積分數量相關錯誤
var (
	ErrNegativePointsAmount = &DomainError{
		Code:    ErrCodeNegativePointsAmount,
		Message: "積分數量不能為負數",
	}

	ErrInvalidPointsAmount = &DomainError{
		Code:    ErrCodeInvalidPointsAmount,
		Message: "無效的積分數量",
	}

	ErrInsufficientPoints = &DomainError{
		Code:    ErrCodeInsufficientPoints,
		Message: "積分餘額不足",
	}

	ErrPointsOverflow = &DomainError{
		Code:    ErrCodePointsOverflow,
		Message: "積分數量超出上限",
	}
)

// 帳戶相關錯誤
var (
	ErrInvalidUserID = &DomainError{
		Code:    ErrCodeInvalidUserID,
		Message: "無效的用戶 ID",
	}
)

// 開箱相關錯誤
var (
	ErrInvalidReward = &DomainError{
		Code:    ErrCodeInvalidReward,
		Message: "獎勵不在開箱獎勵表中",
	}
)

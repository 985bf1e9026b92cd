package points

import (
	"github.com/jackyeh168/points_bot/src/internal/domain/shared"
)

// UserID 積分帳戶所屬用戶（即帳戶主鍵）
//
// 實現：shared.UserID 的類型別名，與 admin 名單共用同一種 ID。
type UserID = shared.UserID

// NewUserID 從平台用戶 ID 建立 UserID
func NewUserID(value int64) UserID {
	return shared.NewUserID(value)
}

// UserIDFromString 從命令參數解析用戶 ID
//
// 返回：
//   UserID - 解析成功的 ID
//   error - 解析失敗（返回 ErrInvalidUserID，附帶輸入字串）
//
// 使用場景：/reset_points <user_id>
func UserIDFromString(s string) (UserID, error) {
	return shared.UserIDFromString(s, ErrInvalidUserID)
}

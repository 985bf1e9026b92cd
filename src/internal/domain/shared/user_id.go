package shared

// UserMarker 是 UserID 的標記類型
type UserMarker struct{}

// UserID 聊天平台用戶的唯一標識符
//
// 積分帳戶與管理員名單都以同一個平台用戶 ID 作為主鍵，
// 所以定義在 shared 而非各自的 bounded context。
type UserID = EntityID[UserMarker]

// NewUserID 從平台用戶 ID 建立 UserID
func NewUserID(value int64) UserID {
	return NewEntityID[UserMarker](value)
}

// UserIDFromString 從命令參數解析 UserID
//
// 解析失敗時返回 errTemplate（如 points.ErrInvalidUserID）。
func UserIDFromString(s string, errTemplate error) (UserID, error) {
	return EntityIDFromString[UserMarker](s, errTemplate)
}

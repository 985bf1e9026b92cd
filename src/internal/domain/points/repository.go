package points

import "github.com/jackyeh168/points_bot/src/internal/domain/shared"

// ===========================
// PointsAccount Repository 介面
// ===========================

// PointsAccountRepository 積分帳戶倉儲介面
//
// 設計原則：
// 1. 依賴倒置原則（DIP）：Domain Layer 定義介面，Infrastructure Layer 實作
// 2. 聚合根持久化：每個聚合根一個 Repository
// 3. 事務支持：使用 TransactionContext 封裝事務，避免基礎設施洩漏
//
// 事務使用範例：
//   txManager.InTransaction(func(ctx shared.TransactionContext) error {
//       account, _ := repo.FindByUserID(ctx, userID)
//       account.Credit(amount, "admin_grant")
//       return repo.Save(ctx, account)
//   })
type PointsAccountRepository interface {
	// FindByUserID 根據用戶 ID 查找積分帳戶
	// 返回：找到的帳戶，或 ErrAccountNotFound
	FindByUserID(ctx shared.TransactionContext, userID UserID) (*PointsAccount, error)

	// Save 保存積分帳戶（upsert）
	// 帳戶不存在時新增，存在時以聚合的餘額覆蓋（單一語句，立即提交或隨事務提交）
	Save(ctx shared.TransactionContext, account *PointsAccount) error
}

// ===========================
// Repository 錯誤定義
// ===========================

// Repository 相關錯誤代碼
const (
	ErrCodeAccountNotFound  ErrorCode = "ACCOUNT_NOT_FOUND"
	ErrCodeRepositoryError  ErrorCode = "REPOSITORY_ERROR"
	ErrCodeCorruptedBalance ErrorCode = "ACCOUNT_BALANCE_CORRUPTED"
)

// Repository 錯誤實例
var (
	// ErrAccountNotFound 帳戶不存在
	ErrAccountNotFound = &DomainError{
		Code:    ErrCodeAccountNotFound,
		Message: "積分帳戶不存在",
	}

	// ErrRepositoryError 倉儲操作錯誤（通用）
	ErrRepositoryError = &DomainError{
		Code:    ErrCodeRepositoryError,
		Message: "倉儲操作失敗",
	}

	// ErrCorruptedBalance 資料庫中的餘額為負數
	ErrCorruptedBalance = &DomainError{
		Code:    ErrCodeCorruptedBalance,
		Message: "資料庫中的積分餘額無效",
	}
)

package admin

import (
	"github.com/jackyeh168/points_bot/src/internal/domain/shared"
)

// ===========================
// AdminRepository 介面
// ===========================

// AdminRepository 管理員名單倉儲介面
//
// 設計原則：
// 1. Domain Layer 定義介面，Infrastructure Layer 實作
// 2. 沒有快取：IsAdmin 每次都反映資料庫目前狀態
//
// 事務約定：
// - IsAdmin、List：ctx 可為 nil
// - ReplaceAll：先刪除全部再逐筆新增，應在 InTransaction 內調用
type AdminRepository interface {
	// IsAdmin 判斷用戶是否在管理員名單中
	//
	// 返回：
	// - bool: true 表示是管理員
	// - error: 查詢失敗時返回 ErrRepositoryError
	IsAdmin(ctx shared.TransactionContext, userID shared.UserID) (bool, error)

	// ReplaceAll 以新名單整批替換管理員表
	//
	// 後置條件：管理員表內容與 set 完全一致，先前的資料全部丟棄
	ReplaceAll(ctx shared.TransactionContext, set AdminSet) error

	// List 列出目前名單（按 ID 排序）
	List(ctx shared.TransactionContext) ([]shared.UserID, error)
}

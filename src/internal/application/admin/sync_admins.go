package admin

import (
	"fmt"

	"github.com/jackyeh168/points_bot/src/internal/domain/admin"
	"github.com/jackyeh168/points_bot/src/internal/domain/shared"
)

// ===========================
// SyncAdmins Use Case
// ===========================

// AdminSource 平台端管理員名單來源
//
// 由 interfaces/telegram 實作（查詢設定的聊天室管理員）。
type AdminSource interface {
	ListAdministrators() ([]int64, error)
}

// SyncAdminsResult 同步結果
type SyncAdminsResult struct {
	AdminIDs []int64 // 同步後的名單（已去重、排序）
}

// SyncAdminsUseCase 啟動時同步管理員名單
//
// 執行流程：
// 1. 從平台取得聊天室管理員 ID 列表
// 2. 轉換為 AdminSet（去重、驗證）
// 3. 在單一事務中替換整個管理員表
//
// 任何一步失敗都不會修改管理員表；調用者決定是否中止啟動。
type SyncAdminsUseCase struct {
	source    AdminSource
	adminRepo admin.AdminRepository
	txManager shared.TransactionManager
}

// NewSyncAdminsUseCase 創建 Use Case 實例
func NewSyncAdminsUseCase(
	source AdminSource,
	repo admin.AdminRepository,
	txManager shared.TransactionManager,
) *SyncAdminsUseCase {
	return &SyncAdminsUseCase{
		source:    source,
		adminRepo: repo,
		txManager: txManager,
	}
}

// Execute 執行同步
//
// 錯誤處理：
// - ErrSourceUnavailable: 平台查詢失敗（包裝原始錯誤）
// - ErrInvalidAdminID: 平台返回零值 ID
// - ErrRepositoryError: 資料庫寫入失敗，事務已回滾
func (uc *SyncAdminsUseCase) Execute() (*SyncAdminsResult, error) {
	// 1. 查詢平台
	raw, err := uc.source.ListAdministrators()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", admin.ErrSourceUnavailable, err)
	}

	// 2. 轉換為 AdminSet
	ids := make([]shared.UserID, 0, len(raw))
	for _, id := range raw {
		ids = append(ids, shared.NewUserID(id))
	}
	set, err := admin.NewAdminSet(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build admin set: %w", err)
	}

	// 3. 整批替換（刪除與新增在同一事務）
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		return uc.adminRepo.ReplaceAll(ctx, set)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to replace admins: %w", err)
	}

	result := &SyncAdminsResult{AdminIDs: make([]int64, 0, set.Len())}
	for _, id := range set.IDs() {
		result.AdminIDs = append(result.AdminIDs, id.Int64())
	}
	return result, nil
}

package points

import (
	"fmt"

	"github.com/jackyeh168/points_bot/src/internal/domain/points"
	"github.com/jackyeh168/points_bot/src/internal/domain/shared"
)

// ResetPointsCommand 管理員將指定用戶的積分歸零
type ResetPointsCommand struct {
	InvokerID    int64
	TargetUserID string // 命令參數原文
}

// ResetPointsResult 重置結果
type ResetPointsResult struct {
	TargetUserID    int64
	PreviousBalance int64
}

// ResetPointsUseCase 重置積分 Use Case
//
// 目標用戶沒有帳戶時寫入一筆 0 積分的資料，不返回錯誤。
type ResetPointsUseCase struct {
	accountRepo points.PointsAccountRepository
	txManager   shared.TransactionManager
	admins      AdminChecker
	publisher   shared.EventPublisher
}

// NewResetPointsUseCase 創建 Use Case 實例（publisher 可為 nil）
func NewResetPointsUseCase(
	repo points.PointsAccountRepository,
	txManager shared.TransactionManager,
	admins AdminChecker,
	publisher shared.EventPublisher,
) *ResetPointsUseCase {
	return &ResetPointsUseCase{
		accountRepo: repo,
		txManager:   txManager,
		admins:      admins,
		publisher:   publisher,
	}
}

// Execute 執行重置
//
// 錯誤處理：
// - admin.ErrPermissionDenied: 非管理員
// - ErrInvalidUserID: 參數缺少或不是非零整數
func (uc *ResetPointsUseCase) Execute(cmd ResetPointsCommand) (*ResetPointsResult, error) {
	invoker := points.NewUserID(cmd.InvokerID)

	if err := uc.admins.RequireAdmin(invoker, "reset_points"); err != nil {
		return nil, err
	}

	target, err := points.UserIDFromString(cmd.TargetUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse target user ID: %w", err)
	}

	var (
		account  *points.PointsAccount
		previous int64
	)
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		account, err = loadOrOpen(ctx, uc.accountRepo, target)
		if err != nil {
			return err
		}
		previous = account.Balance().Value()
		account.Reset(invoker)
		if err := uc.accountRepo.Save(ctx, account); err != nil {
			return fmt.Errorf("failed to save account: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	publishEvents(uc.publisher, account.PullEvents())

	return &ResetPointsResult{
		TargetUserID:    target.Int64(),
		PreviousBalance: previous,
	}, nil
}

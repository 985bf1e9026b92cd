package points

import (
	"fmt"

	"github.com/jackyeh168/points_bot/src/internal/domain/points"
	"github.com/jackyeh168/points_bot/src/internal/domain/shared"
)

// ===========================
// OpenBox Use Case
// ===========================

// OpenBoxCommand 開箱命令
type OpenBoxCommand struct {
	UserID int64
}

// OpenBoxResult 開箱結果
type OpenBoxResult struct {
	Reward       int64
	FinalBalance int64
}

// OpenBoxUseCase 開箱 Use Case
//
// 扣費、抽獎、加回獎勵與保存都在同一個事務內完成：
// 任何一步失敗都不會留下只扣費未加獎勵的狀態。
type OpenBoxUseCase struct {
	accountRepo points.PointsAccountRepository
	txManager   shared.TransactionManager
	boxService  *points.BoxService
	publisher   shared.EventPublisher
}

// NewOpenBoxUseCase 創建 Use Case 實例（publisher 可為 nil）
func NewOpenBoxUseCase(
	repo points.PointsAccountRepository,
	txManager shared.TransactionManager,
	boxService *points.BoxService,
	publisher shared.EventPublisher,
) *OpenBoxUseCase {
	return &OpenBoxUseCase{
		accountRepo: repo,
		txManager:   txManager,
		boxService:  boxService,
		publisher:   publisher,
	}
}

// Execute 執行開箱
//
// 錯誤處理：
// - ErrInsufficientPoints: 餘額不足 10（帳戶不存在視為 0）
// - 其他 Repository 錯誤：添加上下文後返回
func (uc *OpenBoxUseCase) Execute(cmd OpenBoxCommand) (*OpenBoxResult, error) {
	userID := points.NewUserID(cmd.UserID)

	var (
		account *points.PointsAccount
		result  *points.BoxResult
	)
	err := uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		var err error
		account, err = loadOrOpen(ctx, uc.accountRepo, userID)
		if err != nil {
			return err
		}

		result, err = uc.boxService.Open(account)
		if err != nil {
			return err
		}

		if err := uc.accountRepo.Save(ctx, account); err != nil {
			return fmt.Errorf("failed to save account: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	publishEvents(uc.publisher, account.PullEvents())

	return &OpenBoxResult{
		Reward:       result.Reward.Value(),
		FinalBalance: result.FinalBalance.Value(),
	}, nil
}

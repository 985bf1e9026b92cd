package points

import (
	"errors"
	"fmt"

	"github.com/jackyeh168/points_bot/src/internal/domain/points"
	"github.com/jackyeh168/points_bot/src/internal/domain/shared"
)

// ===========================
// AddPoints Use Case
// ===========================

// AddPointsCommand 管理員為自己增加積分
//
// 輸入：
// - InvokerID: 發出命令的用戶（同時是被加分的帳戶）
// - Amount: 命令參數原文（非負整數）
type AddPointsCommand struct {
	InvokerID int64
	Amount    string
}

// AddPointsResult 增加積分的結果
type AddPointsResult struct {
	Amount     int64
	NewBalance int64
}

// AddPointsUseCase 增加積分 Use Case
//
// 業務規則：
// 1. 先檢查權限，非管理員不解析參數
// 2. 數量必須是非負整數；0 是合法的
// 3. 帳戶不存在時以 0 為起點建立（upsert）
type AddPointsUseCase struct {
	accountRepo points.PointsAccountRepository
	txManager   shared.TransactionManager
	admins      AdminChecker
	publisher   shared.EventPublisher
}

// NewAddPointsUseCase 創建 Use Case 實例（publisher 可為 nil）
func NewAddPointsUseCase(
	repo points.PointsAccountRepository,
	txManager shared.TransactionManager,
	admins AdminChecker,
	publisher shared.EventPublisher,
) *AddPointsUseCase {
	return &AddPointsUseCase{
		accountRepo: repo,
		txManager:   txManager,
		admins:      admins,
		publisher:   publisher,
	}
}

// Execute 執行增加積分
//
// 錯誤處理：
// - admin.ErrPermissionDenied: 非管理員
// - ErrInvalidPointsAmount / ErrNegativePointsAmount: 參數無效
// - ErrPointsOverflow: 增加後超出 int64
// - 其他 Repository 錯誤：添加上下文後返回
func (uc *AddPointsUseCase) Execute(cmd AddPointsCommand) (*AddPointsResult, error) {
	invoker := points.NewUserID(cmd.InvokerID)

	// 1. 權限檢查
	if err := uc.admins.RequireAdmin(invoker, "add_points"); err != nil {
		return nil, err
	}

	// 2. 解析數量
	amount, err := points.ParsePointsAmount(cmd.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}

	// 3. 在事務中讀取、加分、保存
	var account *points.PointsAccount
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		account, err = loadOrOpen(ctx, uc.accountRepo, invoker)
		if err != nil {
			return err
		}
		if err := account.Credit(amount, "admin_grant"); err != nil {
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

	return &AddPointsResult{
		Amount:     amount.Value(),
		NewBalance: account.Balance().Value(),
	}, nil
}

// loadOrOpen 讀取帳戶；不存在時返回餘額為 0 的新帳戶（尚未保存）
func loadOrOpen(
	ctx shared.TransactionContext,
	repo points.PointsAccountRepository,
	userID points.UserID,
) (*points.PointsAccount, error) {
	account, err := repo.FindByUserID(ctx, userID)
	if errors.Is(err, points.ErrAccountNotFound) {
		return points.NewPointsAccount(userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return account, nil
}

package points

import (
	"errors"
	"fmt"

	"github.com/jackyeh168/points_bot/src/internal/domain/points"
	"github.com/jackyeh168/points_bot/src/internal/domain/shared"
)

// GetPointsBalanceQuery 查詢積分餘額的查詢
type GetPointsBalanceQuery struct {
	UserID int64
}

// GetPointsBalanceResult 查詢積分餘額的結果
type GetPointsBalanceResult struct {
	UserID  int64
	Balance int64
}

// GetPointsBalanceUseCase 查詢積分餘額 Use Case
type GetPointsBalanceUseCase struct {
	accountRepo points.PointsAccountRepository
}

// NewGetPointsBalanceUseCase 創建 Use Case 實例
func NewGetPointsBalanceUseCase(repo points.PointsAccountRepository) *GetPointsBalanceUseCase {
	return &GetPointsBalanceUseCase{
		accountRepo: repo,
	}
}

// Execute 執行查詢積分餘額
//
// 執行流程：
// 1. 驗證 UserID
// 2. 查詢積分帳戶
// 3. 帳戶不存在時視為 0（不建立資料）
func (uc *GetPointsBalanceUseCase) Execute(query GetPointsBalanceQuery) (*GetPointsBalanceResult, error) {
	return uc.ExecuteWithContext(nil, query)
}

// ExecuteWithContext 在事務上下文中執行查詢
//
// 獨立查詢時可傳入 nil（不需要事務）。
func (uc *GetPointsBalanceUseCase) ExecuteWithContext(
	ctx shared.TransactionContext,
	query GetPointsBalanceQuery,
) (*GetPointsBalanceResult, error) {
	userID := points.NewUserID(query.UserID)
	if userID.IsEmpty() {
		return nil, points.ErrInvalidUserID.WithContext("user_id", query.UserID)
	}

	account, err := uc.accountRepo.FindByUserID(ctx, userID)
	if errors.Is(err, points.ErrAccountNotFound) {
		return &GetPointsBalanceResult{UserID: query.UserID, Balance: 0}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	return &GetPointsBalanceResult{
		UserID:  query.UserID,
		Balance: account.Balance().Value(),
	}, nil
}

package points

import (
	"time"

	"github.com/jackyeh168/points_bot/src/internal/domain/shared"
)

// ===========================
// PointsAccount 聚合根
// ===========================

// PointsAccount 積分帳戶聚合根
//
// 業務不變條件：
// - 每個 UserID 最多一個帳戶
// - Balance >= 0（由 PointsAmount 值對象保證）
// - 不存在的帳戶讀取時視為餘額 0（由 Application Layer 處理，不寫入資料庫）
//
// 帳戶在第一次加分時隱式建立（upsert），從不刪除；重置只把餘額設為 0。
type PointsAccount struct {
	userID  UserID
	balance PointsAmount

	// 審計字段
	createdAt time.Time
	updatedAt time.Time

	// 待發布的領域事件
	events []shared.DomainEvent
}

// ===========================
// 建構函數（工廠方法）
// ===========================

// NewPointsAccount 創建新的積分帳戶（餘額 0）
//
// 新帳戶只存在於記憶體，直到 Repository.Save() 寫入。
// 不發布事件：空帳戶本身不是業務上的變更。
func NewPointsAccount(userID UserID) (*PointsAccount, error) {
	if userID.IsEmpty() {
		return nil, ErrInvalidUserID.WithContext(
			"reason", "userID cannot be empty",
		)
	}

	now := time.Now()

	return &PointsAccount{
		userID:    userID,
		balance:   newPointsAmountUnchecked(0),
		createdAt: now,
		updatedAt: now,
		events:    make([]shared.DomainEvent, 0),
	}, nil
}

// ===========================
// 查詢方法（Getters）
// ===========================

// UserID 獲取用戶 ID
func (a *PointsAccount) UserID() UserID {
	return a.userID
}

// Balance 獲取目前餘額
func (a *PointsAccount) Balance() PointsAmount {
	return a.balance
}

// CreatedAt 獲取創建時間
func (a *PointsAccount) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt 獲取最後更新時間
func (a *PointsAccount) UpdatedAt() time.Time {
	return a.updatedAt
}

// CanAfford 判斷餘額是否足以支付 cost
func (a *PointsAccount) CanAfford(cost PointsAmount) bool {
	return !a.balance.LessThan(cost)
}

// ===========================
// 事件管理
// ===========================

func (a *PointsAccount) addEvent(event shared.DomainEvent) {
	a.events = append(a.events, event)
}

// PullEvents 獲取所有待發布事件並清空列表
//
// 在 Repository.Save() 所在事務提交後調用，只讀取一次。
func (a *PointsAccount) PullEvents() []shared.DomainEvent {
	events := a.events
	a.events = make([]shared.DomainEvent, 0)
	return events
}

// ===========================
// 命令方法（狀態變更）
// ===========================

// Credit 增加積分
//
// 參數：
//   amount - 增加的積分數量（PointsAmount 已保證 >= 0）
//   reason - 來源（如 "admin_grant"、"box_reward"）
//
// 返回：
//   error - 餘額溢位時返回 ErrPointsOverflow，帳戶狀態不變
func (a *PointsAccount) Credit(amount PointsAmount, reason string) error {
	newBalance, err := a.balance.Add(amount)
	if err != nil {
		return err
	}

	a.balance = newBalance
	a.updatedAt = time.Now()

	a.addEvent(NewPointsCreditedEvent(a.userID, amount, newBalance, reason))

	return nil
}

// Deduct 扣減積分
//
// 前置條件：餘額 >= amount，否則返回 ErrInsufficientPoints，帳戶狀態不變。
func (a *PointsAccount) Deduct(amount PointsAmount, reason string) error {
	if !a.CanAfford(amount) {
		return ErrInsufficientPoints.WithContext(
			"requested", amount.Value(),
			"available", a.balance.Value(),
			"reason", reason,
		)
	}

	// CanAfford 已保證 Subtract 不會失敗
	newBalance, _ := a.balance.Subtract(amount)

	a.balance = newBalance
	a.updatedAt = time.Now()

	a.addEvent(NewPointsDeductedEvent(a.userID, amount, newBalance, reason))

	return nil
}

// Reset 將餘額設為 0
//
// 參數：
//   resetBy - 執行重置的管理員
//
// 無論原餘額為何（包括全新帳戶），結果都是 0，並發布 PointsResetEvent。
func (a *PointsAccount) Reset(resetBy UserID) {
	previous := a.balance

	a.balance = newPointsAmountUnchecked(0)
	a.updatedAt = time.Now()

	a.addEvent(NewPointsResetEvent(a.userID, previous, resetBy))
}

// recordBoxOpened 由 BoxService 在開箱完成後調用
func (a *PointsAccount) recordBoxOpened(cost, reward PointsAmount) {
	a.addEvent(NewBoxOpenedEvent(a.userID, cost, reward, a.balance))
}

// ===========================
// 聚合重建方法（僅供 Infrastructure Layer 使用）
// ===========================

// ReconstructPointsAccount 從持久化存儲重建聚合根
//
// 與 NewPointsAccount 的區別：
//   * New: 建立全新的空帳戶
//   * Reconstruct: 重建已存在的帳戶，不發布事件
//
// 即使是從資料庫重建，也必須驗證不變條件，防止損壞資料污染領域層。
func ReconstructPointsAccount(
	userID UserID,
	balance int64,
	createdAt time.Time,
	updatedAt time.Time,
) (*PointsAccount, error) {
	if userID.IsEmpty() {
		return nil, ErrInvalidUserID.WithContext(
			"reason", "invalid user ID in database",
		)
	}

	amount, err := NewPointsAmount(balance)
	if err != nil {
		return nil, ErrCorruptedBalance.WithContext(
			"user_id", userID.String(),
			"value", balance,
			"underlying_error", err.Error(),
		)
	}

	return &PointsAccount{
		userID:    userID,
		balance:   amount,
		createdAt: createdAt,
		updatedAt: updatedAt,
		events:    make([]shared.DomainEvent, 0),
	}, nil
}

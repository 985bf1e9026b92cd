package points

import (
	"time"

	"github.com/google/uuid"
)

// 事件類型常量
const (
	EventTypePointsCredited = "points.credited"
	EventTypePointsDeducted = "points.deducted"
	EventTypePointsReset    = "points.reset"
	EventTypeBoxOpened      = "points.box_opened"
)

// eventBase 所有積分事件共用的欄位
type eventBase struct {
	eventID    string
	userID     UserID
	occurredAt time.Time
}

func newEventBase(userID UserID) eventBase {
	return eventBase{
		eventID:    uuid.New().String(),
		userID:     userID,
		occurredAt: time.Now(),
	}
}

// EventID 實現 DomainEvent 介面
func (e eventBase) EventID() string {
	return e.eventID
}

// OccurredAt 實現 DomainEvent 介面
func (e eventBase) OccurredAt() time.Time {
	return e.occurredAt
}

// AggregateID 實現 DomainEvent 介面
func (e eventBase) AggregateID() string {
	return e.userID.String()
}

// UserID 獲取帳戶所屬用戶
func (e eventBase) UserID() UserID {
	return e.userID
}

// ===========================
// PointsCredited 領域事件
// ===========================

// PointsCreditedEvent 積分已增加事件
type PointsCreditedEvent struct {
	eventBase
	amount     PointsAmount
	newBalance PointsAmount
	reason     string
}

// NewPointsCreditedEvent 創建積分已增加事件
func NewPointsCreditedEvent(userID UserID, amount, newBalance PointsAmount, reason string) *PointsCreditedEvent {
	return &PointsCreditedEvent{
		eventBase:  newEventBase(userID),
		amount:     amount,
		newBalance: newBalance,
		reason:     reason,
	}
}

// EventType 實現 DomainEvent 介面
func (e *PointsCreditedEvent) EventType() string {
	return EventTypePointsCredited
}

// Amount 獲取增加的積分
func (e *PointsCreditedEvent) Amount() PointsAmount {
	return e.amount
}

// NewBalance 獲取變更後餘額
func (e *PointsCreditedEvent) NewBalance() PointsAmount {
	return e.newBalance
}

// Reason 獲取來源
func (e *PointsCreditedEvent) Reason() string {
	return e.reason
}

// ===========================
// PointsDeducted 領域事件
// ===========================

// PointsDeductedEvent 積分已扣減事件
type PointsDeductedEvent struct {
	eventBase
	amount     PointsAmount
	newBalance PointsAmount
	reason     string
}

// NewPointsDeductedEvent 創建積分已扣減事件
func NewPointsDeductedEvent(userID UserID, amount, newBalance PointsAmount, reason string) *PointsDeductedEvent {
	return &PointsDeductedEvent{
		eventBase:  newEventBase(userID),
		amount:     amount,
		newBalance: newBalance,
		reason:     reason,
	}
}

// EventType 實現 DomainEvent 介面
func (e *PointsDeductedEvent) EventType() string {
	return EventTypePointsDeducted
}

// Amount 獲取扣減的積分
func (e *PointsDeductedEvent) Amount() PointsAmount {
	return e.amount
}

// NewBalance 獲取變更後餘額
func (e *PointsDeductedEvent) NewBalance() PointsAmount {
	return e.newBalance
}

// Reason 獲取扣減原因
func (e *PointsDeductedEvent) Reason() string {
	return e.reason
}

// ===========================
// PointsReset 領域事件
// ===========================

// PointsResetEvent 積分已重置事件
type PointsResetEvent struct {
	eventBase
	previousBalance PointsAmount
	resetBy         UserID
}

// NewPointsResetEvent 創建積分已重置事件
func NewPointsResetEvent(userID UserID, previousBalance PointsAmount, resetBy UserID) *PointsResetEvent {
	return &PointsResetEvent{
		eventBase:       newEventBase(userID),
		previousBalance: previousBalance,
		resetBy:         resetBy,
	}
}

// EventType 實現 DomainEvent 介面
func (e *PointsResetEvent) EventType() string {
	return EventTypePointsReset
}

// PreviousBalance 獲取重置前餘額
func (e *PointsResetEvent) PreviousBalance() PointsAmount {
	return e.previousBalance
}

// ResetBy 獲取執行重置的管理員
func (e *PointsResetEvent) ResetBy() UserID {
	return e.resetBy
}

// ===========================
// BoxOpened 領域事件
// ===========================

// BoxOpenedEvent 開箱事件
type BoxOpenedEvent struct {
	eventBase
	cost         PointsAmount
	reward       PointsAmount
	finalBalance PointsAmount
}

// NewBoxOpenedEvent 創建開箱事件
func NewBoxOpenedEvent(userID UserID, cost, reward, finalBalance PointsAmount) *BoxOpenedEvent {
	return &BoxOpenedEvent{
		eventBase:    newEventBase(userID),
		cost:         cost,
		reward:       reward,
		finalBalance: finalBalance,
	}
}

// EventType 實現 DomainEvent 介面
func (e *BoxOpenedEvent) EventType() string {
	return EventTypeBoxOpened
}

// Cost 獲取開箱費用
func (e *BoxOpenedEvent) Cost() PointsAmount {
	return e.cost
}

// Reward 獲取抽中的獎勵
func (e *BoxOpenedEvent) Reward() PointsAmount {
	return e.reward
}

// FinalBalance 獲取開箱後餘額
func (e *BoxOpenedEvent) FinalBalance() PointsAmount {
	return e.finalBalance
}

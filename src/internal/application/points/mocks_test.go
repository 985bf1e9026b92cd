package points

import (
	"time"

	"github.com/jackyeh168/points_bot/src/internal/domain/admin"
	"github.com/jackyeh168/points_bot/src/internal/domain/points"
	"github.com/jackyeh168/points_bot/src/internal/domain/shared"
)

// ===========================
// Mock Repository
// ===========================

// MockPointsAccountRepository 以 user_id → 餘額保存資料
//
// 每次 FindByUserID 都重新建構聚合，行為與真實倉儲一致。
type MockPointsAccountRepository struct {
	balances      map[int64]int64
	SaveCallCount int
	SaveErr       error
	FindErr       error
}

func NewMockPointsAccountRepository() *MockPointsAccountRepository {
	return &MockPointsAccountRepository{
		balances: make(map[int64]int64),
	}
}

func (m *MockPointsAccountRepository) withBalance(userID, balance int64) *MockPointsAccountRepository {
	m.balances[userID] = balance
	return m
}

func (m *MockPointsAccountRepository) FindByUserID(ctx shared.TransactionContext, userID points.UserID) (*points.PointsAccount, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	balance, exists := m.balances[userID.Int64()]
	if !exists {
		return nil, points.ErrAccountNotFound
	}
	return points.ReconstructPointsAccount(userID, balance, time.Now(), time.Now())
}

func (m *MockPointsAccountRepository) Save(ctx shared.TransactionContext, account *points.PointsAccount) error {
	m.SaveCallCount++ // 無論成功或失敗，都計數
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.balances[account.UserID().Int64()] = account.Balance().Value()
	return nil
}

func (m *MockPointsAccountRepository) balance(userID int64) (int64, bool) {
	v, ok := m.balances[userID]
	return v, ok
}

// ===========================
// Mock TransactionManager
// ===========================

type MockTransactionManager struct {
	InTransactionCallCount int
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	m.InTransactionCallCount++
	return fn(nil)
}

// ===========================
// Mock AdminChecker
// ===========================

type MockAdminChecker struct {
	admins    map[int64]bool
	Err       error
	CallCount int
}

func NewMockAdminChecker(ids ...int64) *MockAdminChecker {
	m := &MockAdminChecker{admins: make(map[int64]bool)}
	for _, id := range ids {
		m.admins[id] = true
	}
	return m
}

func (m *MockAdminChecker) RequireAdmin(userID shared.UserID, command string) error {
	m.CallCount++
	if m.Err != nil {
		return m.Err
	}
	if !m.admins[userID.Int64()] {
		return admin.ErrPermissionDenied.WithContext("user_id", userID.String(), "command", command)
	}
	return nil
}

// ===========================
// Mock EventPublisher
// ===========================

type MockEventPublisher struct {
	Events []shared.DomainEvent
	Err    error
}

func (m *MockEventPublisher) Publish(event shared.DomainEvent) error {
	return m.PublishBatch([]shared.DomainEvent{event})
}

func (m *MockEventPublisher) PublishBatch(events []shared.DomainEvent) error {
	m.Events = append(m.Events, events...)
	return m.Err
}

func (m *MockEventPublisher) types() []string {
	out := make([]string, 0, len(m.Events))
	for _, e := range m.Events {
		out = append(out, e.EventType())
	}
	return out
}

// fixedDrawer 永遠抽中同一個值
type fixedDrawer int64

func (d fixedDrawer) Draw([]int64) int64 { return int64(d) }

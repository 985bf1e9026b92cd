package admin

import (
	"errors"

	"github.com/jackyeh168/points_bot/src/internal/domain/admin"
	"github.com/jackyeh168/points_bot/src/internal/domain/shared"
)

// ===========================
// Mock AdminRepository
// ===========================

type MockAdminRepository struct {
	admins             map[int64]bool
	ReplaceAllCalls    int
	ReplaceAllErr      error
	IsAdminErr         error
	ReplacedInTx       int
}

func NewMockAdminRepository(ids ...int64) *MockAdminRepository {
	m := &MockAdminRepository{admins: make(map[int64]bool)}
	for _, id := range ids {
		m.admins[id] = true
	}
	return m
}

func (m *MockAdminRepository) IsAdmin(ctx shared.TransactionContext, userID shared.UserID) (bool, error) {
	if m.IsAdminErr != nil {
		return false, m.IsAdminErr
	}
	return m.admins[userID.Int64()], nil
}

func (m *MockAdminRepository) ReplaceAll(ctx shared.TransactionContext, set admin.AdminSet) error {
	m.ReplaceAllCalls++
	if ctx != nil {
		m.ReplacedInTx++
	}
	if m.ReplaceAllErr != nil {
		return m.ReplaceAllErr
	}
	m.admins = make(map[int64]bool)
	for _, id := range set.IDs() {
		m.admins[id.Int64()] = true
	}
	return nil
}

func (m *MockAdminRepository) List(ctx shared.TransactionContext) ([]shared.UserID, error) {
	set := make([]shared.UserID, 0, len(m.admins))
	for id := range m.admins {
		set = append(set, shared.NewUserID(id))
	}
	return set, nil
}

// ===========================
// Mock TransactionManager
// ===========================

// mockTxContext 非 nil 的事務上下文，用於確認調用發生在事務內
type mockTxContext struct{}

type MockTransactionManager struct {
	InTransactionCallCount int
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	m.InTransactionCallCount++
	return fn(mockTxContext{})
}

// ===========================
// Mock AdminSource
// ===========================

type MockAdminSource struct {
	IDs   []int64
	Err   error
	Calls int
}

func (m *MockAdminSource) ListAdministrators() ([]int64, error) {
	m.Calls++
	return m.IDs, m.Err
}

var errNetwork = errors.New("telegram: connection refused")

package persistence

import (
	"github.com/jackyeh168/points_bot/src/internal/domain/shared"
	"gorm.io/gorm"
)

// GORMTransactionManager GORM 實作的事務管理器
//
// fn 返回錯誤時回滾；fn panic 時由 gorm 回滾後重新 panic；否則提交。
type GORMTransactionManager struct {
	db *gorm.DB
}

// NewGORMTransactionManager 創建事務管理器
func NewGORMTransactionManager(db *gorm.DB) shared.TransactionManager {
	return &GORMTransactionManager{db: db}
}

// InTransaction 實作 shared.TransactionManager
func (m *GORMTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMTransactionContext(tx))
	})
}

package admin

import (
	"time"

	"github.com/jackyeh168/points_bot/src/internal/domain/admin"
	"github.com/jackyeh168/points_bot/src/internal/domain/shared"
	"gorm.io/gorm"
)

// gormTransactionContext GORM事務上下文（來自persistence package）
type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// ===========================
// AdminRepositoryImpl
// ===========================

// AdminRepositoryImpl 管理員名單倉儲實現（GORM）
//
// 依賴：
// - *gorm.DB: GORM 資料庫實例
type AdminRepositoryImpl struct {
	db  *gorm.DB
	now func() time.Time
}

// NewAdminRepository 創建新的管理員名單倉儲實例
func NewAdminRepository(db *gorm.DB) admin.AdminRepository {
	return &AdminRepositoryImpl{db: db, now: time.Now}
}

// IsAdmin 判斷用戶是否在管理員名單中
//
// 每次都查詢資料庫，不做快取。
func (r *AdminRepositoryImpl) IsAdmin(ctx shared.TransactionContext, userID shared.UserID) (bool, error) {
	db := r.getDB(ctx)

	var count int64
	result := db.Model(&AdminGORM{}).Where("user_id = ?", userID.Int64()).Count(&count)
	if result.Error != nil {
		return false, admin.ErrRepositoryError.WithContext(
			"op", "is_admin",
			"user_id", userID.String(),
			"database_error", result.Error.Error(),
		)
	}

	return count > 0, nil
}

// ReplaceAll 以新名單整批替換管理員表
//
// 實作邏輯：
// 1. DELETE FROM admins
// 2. 批次 INSERT 新名單
//
// ctx 為 nil 時自行開啟事務，刪除與新增仍是原子的。
func (r *AdminRepositoryImpl) ReplaceAll(ctx shared.TransactionContext, set admin.AdminSet) error {
	if ctx == nil {
		return r.db.Transaction(func(tx *gorm.DB) error {
			return r.replaceAll(tx, set)
		})
	}
	return r.replaceAll(r.getDB(ctx), set)
}

func (r *AdminRepositoryImpl) replaceAll(db *gorm.DB, set admin.AdminSet) error {
	if err := db.Where("1 = 1").Delete(&AdminGORM{}).Error; err != nil {
		return admin.ErrRepositoryError.WithContext(
			"op", "delete_all",
			"database_error", err.Error(),
		)
	}

	if set.Len() == 0 {
		return nil
	}

	syncedAt := r.now()
	rows := make([]AdminGORM, 0, set.Len())
	for _, id := range set.IDs() {
		rows = append(rows, AdminGORM{UserID: id.Int64(), SyncedAt: syncedAt})
	}

	if err := db.Create(&rows).Error; err != nil {
		return admin.ErrRepositoryError.WithContext(
			"op", "insert",
			"count", len(rows),
			"database_error", err.Error(),
		)
	}

	return nil
}

// List 列出目前名單（按 ID 排序）
func (r *AdminRepositoryImpl) List(ctx shared.TransactionContext) ([]shared.UserID, error) {
	db := r.getDB(ctx)

	var rows []AdminGORM
	if err := db.Order("user_id").Find(&rows).Error; err != nil {
		return nil, admin.ErrRepositoryError.WithContext(
			"op", "list",
			"database_error", err.Error(),
		)
	}

	ids := make([]shared.UserID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.toDomain())
	}
	return ids, nil
}

// getDB 獲取 GORM DB 實例
//
// 行為：
// - ctx != nil: 使用事務中的 DB
// - ctx == nil: 使用預設 DB（auto-commit 模式）
func (r *AdminRepositoryImpl) getDB(ctx shared.TransactionContext) *gorm.DB {
	if ctx != nil {
		if txCtx, ok := ctx.(gormTransactionContext); ok {
			return txCtx.GetDB()
		}
	}
	return r.db
}

package points

import (
	"errors"

	"github.com/jackyeh168/points_bot/src/internal/domain/points"
	"github.com/jackyeh168/points_bot/src/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormTransactionContext GORM 事務上下文
type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// ===========================
// PointsAccountRepositoryImpl
// ===========================

// PointsAccountRepositoryImpl 積分帳戶倉儲實現（GORM）
//
// 設計原則：
// - 實作 points.PointsAccountRepository 接口
// - 處理 Domain 與 GORM 模型轉換
// - 將 GORM 錯誤轉換為 Domain 錯誤
type PointsAccountRepositoryImpl struct {
	db *gorm.DB
}

// NewPointsAccountRepository 創建新的積分帳戶倉儲實例
func NewPointsAccountRepository(db *gorm.DB) points.PointsAccountRepository {
	return &PointsAccountRepositoryImpl{db: db}
}

// FindByUserID 根據用戶 ID 查找積分帳戶
//
// 錯誤處理：
// - gorm.ErrRecordNotFound → points.ErrAccountNotFound
// - 其他資料庫錯誤 → points.ErrRepositoryError
func (r *PointsAccountRepositoryImpl) FindByUserID(ctx shared.TransactionContext, userID points.UserID) (*points.PointsAccount, error) {
	db := r.getDB(ctx)

	var gormModel PointsAccountGORM
	result := db.Where("user_id = ?", userID.Int64()).First(&gormModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, points.ErrAccountNotFound.WithContext(
				"user_id", userID.String(),
			)
		}
		return nil, mapError(result.Error, "find", userID)
	}

	return gormModel.toDomain()
}

// Save 保存積分帳戶（upsert）
//
// 實作邏輯：
// INSERT ... ON CONFLICT(user_id) DO UPDATE SET points, updated_at
//
// 單一語句完成新增或覆蓋；對不存在的用戶重置積分時會建立一筆 0 分的記錄，
// 不會因為「更新 0 筆」而失敗。
func (r *PointsAccountRepositoryImpl) Save(ctx shared.TransactionContext, account *points.PointsAccount) error {
	db := r.getDB(ctx)

	gormModel := toGORM(account)

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"points", "updated_at"}),
	}).Create(gormModel)
	if result.Error != nil {
		return mapError(result.Error, "save", account.UserID())
	}

	return nil
}

// ===========================
// Helper Methods
// ===========================

// getDB 獲取 GORM DB 實例
//
// 行為：
//   - ctx != nil: 使用事務中的 DB（從 TransactionContext 獲取）
//   - ctx == nil: 使用預設 DB（auto-commit 模式）
func (r *PointsAccountRepositoryImpl) getDB(ctx shared.TransactionContext) *gorm.DB {
	if ctx != nil {
		if txCtx, ok := ctx.(gormTransactionContext); ok {
			return txCtx.GetDB()
		}
	}
	return r.db
}

// mapError 映射 GORM 錯誤到 Domain 錯誤，保留原始錯誤訊息方便排查
func mapError(err error, op string, userID points.UserID) error {
	return points.ErrRepositoryError.WithContext(
		"op", op,
		"user_id", userID.String(),
		"database_error", err.Error(),
	)
}

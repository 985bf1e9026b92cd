package points

import (
	"time"

	"github.com/jackyeh168/points_bot/src/internal/domain/points"
)

// ===========================
// GORM Models
// ===========================

// PointsAccountGORM 積分帳戶資料表模型
//
// 資料表沿用 points(user_id, points) 結構，既有的資料庫檔案可直接使用；
// 審計欄位允許為空，AutoMigrate 對舊表加欄位時不會失敗。
//
// 資料庫約束：
// - user_id: 主鍵（一個用戶最多一個帳戶）
// - points: 餘額（>= 0）
type PointsAccountGORM struct {
	UserID    int64      `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	Points    int64      `gorm:"column:points;not null;default:0;check:points >= 0"`
	CreatedAt *time.Time `gorm:"column:created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at"`
}

// TableName 指定資料表名稱
func (PointsAccountGORM) TableName() string {
	return "points"
}

// Models 返回此套件需要 AutoMigrate 的模型
func Models() []interface{} {
	return []interface{}{&PointsAccountGORM{}}
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 模型
//
// 重建時會驗證餘額非負，損壞資料返回 ErrCorruptedBalance。
func (g *PointsAccountGORM) toDomain() (*points.PointsAccount, error) {
	return points.ReconstructPointsAccount(
		points.NewUserID(g.UserID),
		g.Points,
		timeOrZero(g.CreatedAt),
		timeOrZero(g.UpdatedAt),
	)
}

// toGORM 將 Domain 模型轉換為 GORM 模型
func toGORM(account *points.PointsAccount) *PointsAccountGORM {
	createdAt := account.CreatedAt()
	updatedAt := account.UpdatedAt()
	return &PointsAccountGORM{
		UserID:    account.UserID().Int64(),
		Points:    account.Balance().Value(),
		CreatedAt: &createdAt,
		UpdatedAt: &updatedAt,
	}
}

// timeOrZero 舊資料沒有審計欄位時返回零值
func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

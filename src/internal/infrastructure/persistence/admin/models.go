package admin

import (
	"time"

	"github.com/jackyeh168/points_bot/src/internal/domain/shared"
)

// AdminGORM 管理員名單資料表模型
//
// 資料表沿用 admins(user_id) 結構；synced_at 記錄該筆資料由哪次同步寫入。
type AdminGORM struct {
	UserID   int64     `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	SyncedAt time.Time `gorm:"column:synced_at"`
}

// TableName 指定資料表名稱
func (AdminGORM) TableName() string {
	return "admins"
}

// Models 返回此套件需要 AutoMigrate 的模型
func Models() []interface{} {
	return []interface{}{&AdminGORM{}}
}

func (g AdminGORM) toDomain() shared.UserID {
	return shared.NewUserID(g.UserID)
}

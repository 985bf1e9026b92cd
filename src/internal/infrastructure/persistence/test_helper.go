package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ===========================
// 測試輔助函數
// ===========================

// SetupTestDB 創建測試用的 SQLite in-memory 資料庫
//
// 設計原則：
// 1. 隔離性：每個測試使用獨立的 in-memory DB
// 2. 真實性：使用真實 SQL 引擎，而非 Mock
//
// 連線池限制為 1，因此整個測試只有一個 in-memory 資料庫；
// 測試結束時自動關閉（t.Cleanup）。
func SetupTestDB(t testing.TB, models ...interface{}) *gorm.DB {
	t.Helper()

	db, err := OpenDatabase(InMemoryPath, nil, models...)
	require.NoError(t, err, "failed to open test database")

	t.Cleanup(func() {
		_ = CloseDatabase(db)
	})

	return db
}

package persistence

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// InMemoryPath 使用 in-memory 資料庫（測試用）
const InMemoryPath = ":memory:"

// OpenDatabase 開啟本地 SQLite 資料庫並建立資料表
//
// 參數：
// - path: 資料庫檔案路徑；InMemoryPath 表示 in-memory
// - logger: 慢查詢與錯誤寫入此 logger；nil 表示丟棄
// - models: 需要 AutoMigrate 的 GORM 模型（每次啟動都執行，冪等）
//
// SQLite 同一時間只允許一個寫入者，因此連線池限制為 1，
// 所有讀寫（包括事務）都在同一連線上依序執行。
func OpenDatabase(path string, logger *slog.Logger, models ...interface{}) (*gorm.DB, error) {
	if path != InMemoryPath {
		dir := filepath.Dir(path)
		if _, err := os.Stat(dir); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read database dir: %w", err)
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database dir: %w", err)
			}
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: newGormLogger(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(models...); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}

	return db, nil
}

// CloseDatabase 關閉底層連線
func CloseDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// slogWriter 將 gorm logger 的輸出轉寫到 slog
type slogWriter struct {
	logger *slog.Logger
}

func (w slogWriter) Printf(format string, args ...interface{}) {
	w.logger.Warn(fmt.Sprintf(format, args...), "component", "gorm")
}

func newGormLogger(logger *slog.Logger) gormlogger.Interface {
	if logger == nil {
		return gormlogger.Discard
	}
	return gormlogger.New(slogWriter{logger: logger}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

package persistence_test

import (
	"errors"
	"testing"

	domainadmin "github.com/jackyeh168/points_bot/src/internal/domain/admin"
	"github.com/jackyeh168/points_bot/src/internal/domain/points"
	"github.com/jackyeh168/points_bot/src/internal/domain/shared"
	"github.com/jackyeh168/points_bot/src/internal/infrastructure/persistence"
	adminrepo "github.com/jackyeh168/points_bot/src/internal/infrastructure/persistence/admin"
	pointsrepo "github.com/jackyeh168/points_bot/src/internal/infrastructure/persistence/points"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ===========================
// TransactionManager Integration Tests
// ===========================
//
// 這些測試驗證 TransactionManager 的核心保證：
// 1. 事務隔離：錯誤時回滾，成功時提交
// 2. Panic 處理：panic 時自動回滾
// 3. 多操作原子性：跨資料表的操作一起成功或一起失敗

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	models := append(pointsrepo.Models(), adminrepo.Models()...)
	return persistence.SetupTestDB(t, models...)
}

func creditedAccount(t *testing.T, userID int64, amount int64) *points.PointsAccount {
	t.Helper()
	account, err := points.NewPointsAccount(points.NewUserID(userID))
	require.NoError(t, err)
	value, err := points.NewPointsAmount(amount)
	require.NoError(t, err)
	require.NoError(t, account.Credit(value, "admin_grant"))
	return account
}

// TestRollbackOnError_DoesNotCommit 驗證事務回滾機制
//
// 預期結果：
// - 事務返回 fn 的錯誤
// - 帳戶不存在於資料庫中
func TestRollbackOnError_DoesNotCommit(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	txManager := persistence.NewGORMTransactionManager(db)
	repo := pointsrepo.NewPointsAccountRepository(db)
	userID := points.NewUserID(101)

	// Act
	err := txManager.InTransaction(func(ctx shared.TransactionContext) error {
		require.NoError(t, repo.Save(ctx, creditedAccount(t, 101, 30)), "Save should succeed within transaction")
		return errors.New("simulated error - trigger rollback")
	})

	// Assert
	require.Error(t, err)
	assert.Equal(t, "simulated error - trigger rollback", err.Error())

	_, err = repo.FindByUserID(nil, userID)
	assert.ErrorIs(t, err, points.ErrAccountNotFound, "account should not exist after rollback")
}

// TestCommitOnSuccess_SavesData 驗證事務提交機制
func TestCommitOnSuccess_SavesData(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	txManager := persistence.NewGORMTransactionManager(db)
	repo := pointsrepo.NewPointsAccountRepository(db)

	// Act
	err := txManager.InTransaction(func(ctx shared.TransactionContext) error {
		return repo.Save(ctx, creditedAccount(t, 102, 30))
	})

	// Assert
	require.NoError(t, err)
	account, err := repo.FindByUserID(nil, points.NewUserID(102))
	require.NoError(t, err, "account should exist after commit")
	assert.Equal(t, int64(30), account.Balance().Value())
}

// TestPanicRecovery_RollsBackAndRepanics 驗證 panic 處理
//
// 預期結果：
// - 事務回滾
// - panic 被重新拋出（由調用者處理）
func TestPanicRecovery_RollsBackAndRepanics(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	txManager := persistence.NewGORMTransactionManager(db)
	repo := pointsrepo.NewPointsAccountRepository(db)

	// Act & Assert
	assert.Panics(t, func() {
		_ = txManager.InTransaction(func(ctx shared.TransactionContext) error {
			require.NoError(t, repo.Save(ctx, creditedAccount(t, 103, 30)))
			panic("simulated panic - should rollback")
		})
	}, "panic should be re-thrown")

	_, err := repo.FindByUserID(nil, points.NewUserID(103))
	assert.ErrorIs(t, err, points.ErrAccountNotFound, "account should not exist after panic rollback")
}

// TestMultipleOperations_AtomicRollback 驗證跨資料表的原子回滾
//
// 場景：同一事務中替換管理員名單並寫入帳戶，最後返回錯誤
//
// 預期結果：兩張表都維持事務開始前的狀態
func TestMultipleOperations_AtomicRollback(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	txManager := persistence.NewGORMTransactionManager(db)
	accounts := pointsrepo.NewPointsAccountRepository(db)
	admins := adminrepo.NewAdminRepository(db)

	original, err := domainadmin.NewAdminSet([]shared.UserID{shared.NewUserID(1)})
	require.NoError(t, err)
	require.NoError(t, admins.ReplaceAll(nil, original))

	replacement, err := domainadmin.NewAdminSet([]shared.UserID{shared.NewUserID(2), shared.NewUserID(3)})
	require.NoError(t, err)

	// Act
	err = txManager.InTransaction(func(ctx shared.TransactionContext) error {
		if err := admins.ReplaceAll(ctx, replacement); err != nil {
			return err
		}
		if err := accounts.Save(ctx, creditedAccount(t, 104, 10)); err != nil {
			return err
		}
		return errors.New("second operation failed")
	})

	// Assert
	require.Error(t, err)

	ids, err := admins.List(nil)
	require.NoError(t, err)
	assert.Equal(t, []shared.UserID{shared.NewUserID(1)}, ids)

	_, err = accounts.FindByUserID(nil, points.NewUserID(104))
	assert.ErrorIs(t, err, points.ErrAccountNotFound)
}

// TestMultipleOperations_AtomicCommit 驗證多操作一起提交
func TestMultipleOperations_AtomicCommit(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	txManager := persistence.NewGORMTransactionManager(db)
	repo := pointsrepo.NewPointsAccountRepository(db)

	// Act
	err := txManager.InTransaction(func(ctx shared.TransactionContext) error {
		if err := repo.Save(ctx, creditedAccount(t, 105, 10)); err != nil {
			return err
		}
		return repo.Save(ctx, creditedAccount(t, 106, 20))
	})

	// Assert
	require.NoError(t, err)

	account1, err := repo.FindByUserID(nil, points.NewUserID(105))
	require.NoError(t, err, "account1 should exist")
	assert.Equal(t, int64(10), account1.Balance().Value())

	account2, err := repo.FindByUserID(nil, points.NewUserID(106))
	require.NoError(t, err, "account2 should exist")
	assert.Equal(t, int64(20), account2.Balance().Value())
}

// TestRepository_NilContext_AutoCommitMode 驗證 nil context 的 auto-commit 行為
//
// 注意：
// - ctx == nil 時每個語句獨立提交
// - 讀操作不強制要求事務參與
func TestRepository_NilContext_AutoCommitMode(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := pointsrepo.NewPointsAccountRepository(db)

	// Act
	require.NoError(t, repo.Save(nil, creditedAccount(t, 107, 40)))
	found, err := repo.FindByUserID(nil, points.NewUserID(107))

	// Assert
	require.NoError(t, err, "FindByUserID with nil context should succeed")
	assert.Equal(t, int64(40), found.Balance().Value())
}

package shared

// TransactionContext 事務上下文介面
//
// 行為約定：
// - ctx != nil: 在調用者的事務中執行（事務傳播）
// - ctx == nil: 使用 auto-commit 模式（適用於單一讀寫操作）
//
// Repository 方法約束：
// - 讀操作（FindByUserID、IsAdmin、List）可傳入 nil
// - 單一語句的寫操作（Save）可傳入 nil，立即提交
// - 多步驟的讀-改-寫（開箱：扣 10 點後再加獎勵）必須在 InTransaction 內
//
// 範例：
//   txManager.InTransaction(func(ctx TransactionContext) error {
//       account, _ := repo.FindByUserID(ctx, userID)
//       result, _ := boxService.Open(account)
//       return repo.Save(ctx, account)
//   })
//
// 這是一個標記介面，Infrastructure Layer 負責實作（GORM），
// Domain Layer 和 Application Layer 只依賴此介面。
type TransactionContext interface {
	// 標記介面：僅用於傳遞上下文，不暴露方法
}

// TransactionManager 事務管理器介面
//
// fn 返回錯誤或 panic 時回滾，否則提交。
type TransactionManager interface {
	InTransaction(fn func(ctx TransactionContext) error) error
}

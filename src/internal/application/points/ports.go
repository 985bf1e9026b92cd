package points

import (
	"log/slog"

	"github.com/jackyeh168/points_bot/src/internal/domain/shared"
)

// AdminChecker 管理員權限檢查（由 application/admin.AuthorizationService 實作）
type AdminChecker interface {
	RequireAdmin(userID shared.UserID, command string) error
}

// publishEvents 在事務提交後發布領域事件
//
// 發布失敗只記錄日誌，不影響命令結果（資料已提交）。
func publishEvents(publisher shared.EventPublisher, events []shared.DomainEvent) {
	if publisher == nil || len(events) == 0 {
		return
	}
	if err := publisher.PublishBatch(events); err != nil {
		slog.Warn("failed to publish domain events", "count", len(events), "error", err)
	}
}

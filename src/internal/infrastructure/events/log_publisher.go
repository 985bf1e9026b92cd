package events

import (
	"log/slog"

	"github.com/jackyeh168/points_bot/src/internal/domain/points"
	"github.com/jackyeh168/points_bot/src/internal/domain/shared"
)

// LogPublisher 把每個領域事件寫成一行審計日誌
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher 創建審計日誌發布者（logger 為 nil 時使用 slog.Default）
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger.With("component", "audit")}
}

// Publish 實作 shared.EventPublisher
func (p *LogPublisher) Publish(event shared.DomainEvent) error {
	attrs := []any{
		"event_id", event.EventID(),
		"event_type", event.EventType(),
		"user_id", event.AggregateID(),
		"occurred_at", event.OccurredAt(),
	}

	switch e := event.(type) {
	case *points.PointsCreditedEvent:
		attrs = append(attrs, "amount", e.Amount().Value(), "balance", e.NewBalance().Value(), "reason", e.Reason())
	case *points.PointsDeductedEvent:
		attrs = append(attrs, "amount", e.Amount().Value(), "balance", e.NewBalance().Value(), "reason", e.Reason())
	case *points.PointsResetEvent:
		attrs = append(attrs, "previous_balance", e.PreviousBalance().Value(), "reset_by", e.ResetBy().Int64())
	case *points.BoxOpenedEvent:
		attrs = append(attrs, "cost", e.Cost().Value(), "reward", e.Reward().Value(), "balance", e.FinalBalance().Value())
	}

	p.logger.Info("domain event", attrs...)
	return nil
}

// PublishBatch 實作 shared.EventPublisher
func (p *LogPublisher) PublishBatch(events []shared.DomainEvent) error {
	for _, event := range events {
		if err := p.Publish(event); err != nil {
			return err
		}
	}
	return nil
}

package events

import (
	"errors"

	"github.com/jackyeh168/points_bot/src/internal/domain/shared"
)

// MultiPublisher 把事件依序轉發給多個發布者
//
// 一個發布者失敗不會阻止其他發布者；所有錯誤以 errors.Join 合併返回。
type MultiPublisher struct {
	publishers []shared.EventPublisher
}

// NewMultiPublisher 創建扇出發布者（忽略 nil）
func NewMultiPublisher(publishers ...shared.EventPublisher) *MultiPublisher {
	m := &MultiPublisher{}
	for _, p := range publishers {
		if p != nil {
			m.publishers = append(m.publishers, p)
		}
	}
	return m
}

// Publish 實作 shared.EventPublisher
func (m *MultiPublisher) Publish(event shared.DomainEvent) error {
	var errs []error
	for _, p := range m.publishers {
		if err := p.Publish(event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// PublishBatch 實作 shared.EventPublisher
func (m *MultiPublisher) PublishBatch(events []shared.DomainEvent) error {
	var errs []error
	for _, p := range m.publishers {
		if err := p.PublishBatch(events); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

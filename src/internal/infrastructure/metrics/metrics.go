package metrics

import (
	"net/http"
	"strconv"

	"github.com/jackyeh168/points_bot/src/internal/domain/points"
	"github.com/jackyeh168/points_bot/src/internal/domain/shared"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 命令結果標籤
const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid_input"
	OutcomeDenied   = "denied"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics Bot 的 Prometheus 指標
//
// 所有指標都註冊在建構時傳入的 Registerer 上，
// 測試可以使用獨立的 prometheus.NewRegistry()。
type Metrics struct {
	commands       *prometheus.CounterVec
	pointsCredited prometheus.Counter
	pointsDeducted prometheus.Counter
	boxRewards     *prometheus.CounterVec
	resets         prometheus.Counter
}

// New 註冊所有指標
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		commands: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pointsbot_commands_total",
				Help: "handled bot commands by command and outcome",
			},
			[]string{"command", "outcome"},
		),
		pointsCredited: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "pointsbot_points_credited_total",
				Help: "points credited to accounts",
			},
		),
		pointsDeducted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "pointsbot_points_deducted_total",
				Help: "points deducted from accounts",
			},
		),
		boxRewards: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pointsbot_box_rewards_total",
				Help: "opened boxes by drawn reward",
			},
			[]string{"reward"},
		),
		resets: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "pointsbot_points_resets_total",
				Help: "admin point resets",
			},
		),
	}
}

// ObserveCommand 記錄一次命令處理結果
func (m *Metrics) ObserveCommand(command, outcome string) {
	m.commands.WithLabelValues(command, outcome).Inc()
}

// Publish 實作 shared.EventPublisher，依事件更新計數器
func (m *Metrics) Publish(event shared.DomainEvent) error {
	switch e := event.(type) {
	case *points.PointsCreditedEvent:
		m.pointsCredited.Add(float64(e.Amount().Value()))
	case *points.PointsDeductedEvent:
		m.pointsDeducted.Add(float64(e.Amount().Value()))
	case *points.PointsResetEvent:
		m.resets.Inc()
	case *points.BoxOpenedEvent:
		m.boxRewards.WithLabelValues(strconv.FormatInt(e.Reward().Value(), 10)).Inc()
	}
	return nil
}

// PublishBatch 實作 shared.EventPublisher
func (m *Metrics) PublishBatch(events []shared.DomainEvent) error {
	for _, event := range events {
		if err := m.Publish(event); err != nil {
			return err
		}
	}
	return nil
}

// Handler 返回 /metrics 的 HTTP handler
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

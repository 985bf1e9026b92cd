package events

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/jackyeh168/points_bot/src/internal/domain/points"
	"github.com/jackyeh168/points_bot/src/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, nil))
}

func mustAmount(t *testing.T, v int64) points.PointsAmount {
	t.Helper()
	amount, err := points.NewPointsAmount(v)
	require.NoError(t, err)
	return amount
}

func TestLogPublisher_BoxOpened_WritesAuditLine(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	publisher := NewLogPublisher(newJSONLogger(&buf))
	event := points.NewBoxOpenedEvent(points.NewUserID(7), mustAmount(t, 10), mustAmount(t, 50), mustAmount(t, 70))

	// Act
	err := publisher.Publish(event)

	// Assert
	require.NoError(t, err)
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "domain event", line["msg"])
	assert.Equal(t, "audit", line["component"])
	assert.Equal(t, points.EventTypeBoxOpened, line["event_type"])
	assert.Equal(t, "7", line["user_id"])
	assert.Equal(t, float64(50), line["reward"])
	assert.Equal(t, float64(70), line["balance"])
}

func TestLogPublisher_PublishBatch_OneLinePerEvent(t *testing.T) {
	var buf bytes.Buffer
	publisher := NewLogPublisher(newJSONLogger(&buf))
	batch := []shared.DomainEvent{
		points.NewPointsCreditedEvent(points.NewUserID(1), mustAmount(t, 5), mustAmount(t, 5), "admin_grant"),
		points.NewPointsResetEvent(points.NewUserID(1), mustAmount(t, 5), points.NewUserID(2)),
	}

	require.NoError(t, publisher.PublishBatch(batch))

	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
}

type recordingPublisher struct {
	batches int
	err     error
}

func (r *recordingPublisher) Publish(shared.DomainEvent) error { r.batches++; return r.err }

func (r *recordingPublisher) PublishBatch([]shared.DomainEvent) error { r.batches++; return r.err }

func TestMultiPublisher_FailureDoesNotStopOthers(t *testing.T) {
	// Arrange
	failing := &recordingPublisher{err: errors.New("boom")}
	healthy := &recordingPublisher{}
	multi := NewMultiPublisher(failing, nil, healthy)
	event := points.NewPointsResetEvent(points.NewUserID(1), mustAmount(t, 0), points.NewUserID(2))

	// Act
	err := multi.PublishBatch([]shared.DomainEvent{event})

	// Assert
	assert.EqualError(t, err, "boom")
	assert.Equal(t, 1, failing.batches)
	assert.Equal(t, 1, healthy.batches)

	require.NoError(t, NewMultiPublisher(healthy).Publish(event))
	assert.Equal(t, 2, healthy.batches)
}

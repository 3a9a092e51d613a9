package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dashboard-srv/internal/export"
	kafkaDelivery "dashboard-srv/internal/export/delivery/kafka"
	"dashboard-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducer struct {
	key   []byte
	value []byte
	err   error
}

func (f *fakeProducer) Publish(key, value []byte) error {
	f.key, f.value = key, value
	return f.err
}

func (f *fakeProducer) Close() error       { return nil }
func (f *fakeProducer) HealthCheck() error { return nil }

func TestPublishExportCompleted(t *testing.T) {
	fake := &fakeProducer{}
	p := New(log.NewNop(), fake)
	completedAt := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	err := p.PublishExportCompleted(context.Background(), export.Completed{
		ExportID:    "id-1",
		Kind:        export.KindPublications,
		FileName:    "publication_summary.csv",
		ObjectName:  "exports/id-1/publication_summary.csv",
		Size:        42,
		CompletedAt: completedAt,
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("id-1"), fake.key)

	var msg kafkaDelivery.ExportCompletedMessage
	require.NoError(t, json.Unmarshal(fake.value, &msg))
	assert.Equal(t, kafkaDelivery.EventExportCompleted, msg.Event)
	assert.Equal(t, "publication_summary.csv", msg.FileName)
	assert.Equal(t, int64(42), msg.Size)
	assert.True(t, completedAt.Equal(msg.CompletedAt))
}

func TestPublishExportCompletedError(t *testing.T) {
	p := New(log.NewNop(), &fakeProducer{err: errors.New("broker down")})

	err := p.PublishExportCompleted(context.Background(), export.Completed{ExportID: "id-1"})
	assert.ErrorContains(t, err, "broker down")
}

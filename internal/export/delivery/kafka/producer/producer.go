package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"dashboard-srv/internal/export"
	kafkaDelivery "dashboard-srv/internal/export/delivery/kafka"
)

// PublishExportCompleted publishes an export.completed event keyed by export id.
func (p *implProducer) PublishExportCompleted(ctx context.Context, event export.Completed) error {
	msg := kafkaDelivery.ExportCompletedMessage{
		Event:       kafkaDelivery.EventExportCompleted,
		ExportID:    event.ExportID,
		Kind:        event.Kind,
		FileName:    event.FileName,
		ObjectName:  event.ObjectName,
		Size:        event.Size,
		CompletedAt: event.CompletedAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal export completed: %w", err)
	}

	if err := p.producer.Publish([]byte(event.ExportID), body); err != nil {
		return fmt.Errorf("failed to publish export completed: %w", err)
	}

	p.l.Infof(ctx, "Published export completed for %s: %s", event.ExportID, event.FileName)
	return nil
}

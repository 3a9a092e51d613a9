package kafka

import "time"

const EventExportCompleted = "export.completed"

// ExportCompletedMessage is the Kafka message for export.completed.
type ExportCompletedMessage struct {
	Event       string    `json:"event"`
	ExportID    string    `json:"export_id"`
	Kind        string    `json:"kind"`
	FileName    string    `json:"file_name"`
	ObjectName  string    `json:"object_name"`
	Size        int64     `json:"size"`
	CompletedAt time.Time `json:"completed_at"`
}

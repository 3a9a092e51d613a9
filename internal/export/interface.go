package export

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	DailyCSV(ctx context.Context) (File, error)
	PublicationCSV(ctx context.Context, input PublicationInput) (File, error)
	UserCSV(ctx context.Context, input UserInput) (File, error)
	// Store renders the export and uploads it to object storage.
	Store(ctx context.Context, input StoreInput) (StoreOutput, error)
}

// Producer publishes export events.
type Producer interface {
	PublishExportCompleted(ctx context.Context, event Completed) error
}

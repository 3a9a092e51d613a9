package snapshot

import (
	"context"

	"dashboard-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Load reads the three source tables and returns the normalized snapshot.
	Load(ctx context.Context) (*model.Snapshot, error)
}

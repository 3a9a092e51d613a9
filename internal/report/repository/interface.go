package repository

import "context"

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	// GetSummary returns ErrCacheMiss when nothing is stored under key.
	GetSummary(ctx context.Context, key SummaryKey) ([]byte, error)
	SaveSummary(ctx context.Context, key SummaryKey, data []byte) error
}

package repository

import "context"

//go:generate mockery --name SourceRepository
type SourceRepository interface {
	// Read returns the raw bytes stored at location.
	Read(ctx context.Context, location string) ([]byte, error)
}

package minio

import (
	"dashboard-srv/internal/snapshot/repository"
	"dashboard-srv/pkg/log"
	pkgMinio "dashboard-srv/pkg/minio"
)

type implSourceRepository struct {
	minio  pkgMinio.MinIO
	bucket string
	l      log.Logger
}

// New - Factory. Locations are object keys inside bucket.
func New(minio pkgMinio.MinIO, bucket string, l log.Logger) repository.SourceRepository {
	return &implSourceRepository{
		minio:  minio,
		bucket: bucket,
		l:      l,
	}
}

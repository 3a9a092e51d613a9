package minio

import (
	"context"
	"fmt"
	"io"

	"dashboard-srv/internal/snapshot/repository"
	pkgMinio "dashboard-srv/pkg/minio"
)

func (r *implSourceRepository) Read(ctx context.Context, location string) ([]byte, error) {
	reader, err := r.minio.DownloadFile(ctx, &pkgMinio.DownloadRequest{
		BucketName: r.bucket,
		ObjectName: location,
	})
	if err != nil {
		r.l.Errorf(ctx, "snapshot.repository.minio.Read: DownloadFile %s/%s: %v", r.bucket, location, err)
		if pkgMinio.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s/%s", repository.ErrNotFound, r.bucket, location)
		}
		return nil, fmt.Errorf("%w: %s/%s: %v", repository.ErrUnreadable, r.bucket, location, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		r.l.Errorf(ctx, "snapshot.repository.minio.Read: ReadAll %s/%s: %v", r.bucket, location, err)
		return nil, fmt.Errorf("%w: %s/%s: %v", repository.ErrUnreadable, r.bucket, location, err)
	}

	r.l.Debugf(ctx, "snapshot.repository.minio.Read: read %d bytes from %s/%s", len(data), r.bucket, location)
	return data, nil
}

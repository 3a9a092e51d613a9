package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"dashboard-srv/internal/snapshot/repository"
)

func (r *implSourceRepository) Read(ctx context.Context, location string) ([]byte, error) {
	path := location
	if !filepath.IsAbs(path) && r.baseDir != "" {
		path = filepath.Join(r.baseDir, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		r.l.Errorf(ctx, "snapshot.repository.file.Read: %s: %v", path, err)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", repository.ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", repository.ErrUnreadable, path, err)
	}

	r.l.Debugf(ctx, "snapshot.repository.file.Read: read %d bytes from %s", len(data), path)
	return data, nil
}

package loader

import (
	"context"
	"errors"

	"dashboard-srv/config"
	"dashboard-srv/internal/model"
	"dashboard-srv/internal/snapshot"
	"dashboard-srv/internal/snapshot/repository"
	sourceFile "dashboard-srv/internal/snapshot/repository/file"
	sourceMinio "dashboard-srv/internal/snapshot/repository/minio"
	snapshotUsecase "dashboard-srv/internal/snapshot/usecase"
	"dashboard-srv/pkg/log"
	pkgMinio "dashboard-srv/pkg/minio"
)

var ErrMinIORequired = errors.New("loader: minio source backend requires a minio client")

// Load reads the configured source tables into a snapshot. minioClient is
// only used by the minio backend.
func Load(ctx context.Context, cfg config.SourceConfig, minioClient pkgMinio.MinIO, l log.Logger) (*model.Snapshot, error) {
	repo, err := newRepository(cfg, minioClient, l)
	if err != nil {
		return nil, err
	}

	uc := snapshotUsecase.New(repo, l, snapshotUsecase.Config{
		Sources: snapshot.Sources{
			Log:    cfg.LogPath,
			Config: cfg.ConfigPath,
			Team:   cfg.TeamPath,
		},
	})
	return uc.Load(ctx)
}

func newRepository(cfg config.SourceConfig, minioClient pkgMinio.MinIO, l log.Logger) (repository.SourceRepository, error) {
	if cfg.Backend == config.SourceBackendMinIO {
		if minioClient == nil {
			return nil, ErrMinIORequired
		}
		return sourceMinio.New(minioClient, cfg.Bucket, l), nil
	}
	return sourceFile.New("", l), nil
}

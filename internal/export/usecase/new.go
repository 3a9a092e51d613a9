package usecase

import (
	"time"

	"dashboard-srv/internal/export"
	"dashboard-srv/internal/report"
	"dashboard-srv/pkg/log"
	pkgMinio "dashboard-srv/pkg/minio"

	"github.com/google/uuid"
)

const (
	defaultPrefix    = "exports"
	defaultURLExpiry = 30 * time.Minute
)

// Config configures where stored exports go.
type Config struct {
	Bucket    string
	Prefix    string
	URLExpiry time.Duration
}

type implUseCase struct {
	report   report.UseCase
	storage  pkgMinio.MinIO
	producer export.Producer
	l        log.Logger
	config   Config

	now   func() time.Time
	newID func() string
}

// New creates a new export UseCase. storage and producer may be nil: without
// storage Store fails with ErrStorageDisabled, without a producer no events
// are published.
func New(
	reportUC report.UseCase,
	storage pkgMinio.MinIO,
	producer export.Producer,
	l log.Logger,
	cfg Config,
) export.UseCase {
	if cfg.Prefix == "" {
		cfg.Prefix = defaultPrefix
	}
	if cfg.URLExpiry <= 0 {
		cfg.URLExpiry = defaultURLExpiry
	}

	return &implUseCase{
		report:   reportUC,
		storage:  storage,
		producer: producer,
		l:        l,
		config:   cfg,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

package usecase

import (
	"time"

	"dashboard-srv/internal/snapshot"
	"dashboard-srv/internal/snapshot/repository"
	"dashboard-srv/pkg/log"
)

// Config holds the source locations and the clock used to date log rows.
type Config struct {
	Sources snapshot.Sources
	// Now supplies the current year for day-month log dates. Defaults to time.Now.
	Now func() time.Time
}

type implUseCase struct {
	repo   repository.SourceRepository
	l      log.Logger
	config Config
}

// New creates a new snapshot UseCase implementation.
func New(repo repository.SourceRepository, l log.Logger, cfg Config) snapshot.UseCase {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &implUseCase{
		repo:   repo,
		l:      l,
		config: cfg,
	}
}

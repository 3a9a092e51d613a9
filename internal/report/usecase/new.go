package usecase

import (
	"dashboard-srv/internal/model"
	"dashboard-srv/internal/report"
	"dashboard-srv/internal/report/repository"
	"dashboard-srv/pkg/log"
)

const defaultPublicationTopN = 5

// Config holds the thresholds used by the aggregators.
type Config struct {
	Targets report.Targets
	// PublicationTopN is the minimum row count of a dated publication selection.
	PublicationTopN int
}

type implUseCase struct {
	snap   *model.Snapshot
	cache  repository.CacheRepository
	l      log.Logger
	config Config
}

// New creates a new report UseCase implementation over an immutable snapshot.
// cache may be nil.
func New(
	snap *model.Snapshot,
	cache repository.CacheRepository,
	l log.Logger,
	cfg Config,
) report.UseCase {
	defaults := report.DefaultTargets()
	if cfg.Targets.WindowSize <= 0 {
		cfg.Targets.WindowSize = defaults.WindowSize
	}
	if cfg.PublicationTopN <= 0 {
		cfg.PublicationTopN = defaultPublicationTopN
	}

	return &implUseCase{
		snap:   snap,
		cache:  cache,
		l:      l,
		config: cfg,
	}
}

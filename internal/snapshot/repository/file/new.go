package file

import (
	"dashboard-srv/internal/snapshot/repository"
	"dashboard-srv/pkg/log"
)

type implSourceRepository struct {
	baseDir string
	l       log.Logger
}

// New - Factory. Relative locations are resolved against baseDir.
func New(baseDir string, l log.Logger) repository.SourceRepository {
	return &implSourceRepository{
		baseDir: baseDir,
		l:       l,
	}
}

package scheduler

import (
	"context"
	"fmt"

	"dashboard-srv/internal/export"
	"dashboard-srv/internal/report"
	"dashboard-srv/pkg/log"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the periodic export jobs.
type Scheduler struct {
	l        log.Logger
	cron     *cron.Cron
	reportUC report.UseCase
	exportUC export.UseCase
}

// New creates a Scheduler that stores the standard exports on spec, a
// standard five field cron expression.
func New(l log.Logger, reportUC report.UseCase, exportUC export.UseCase, spec string) (*Scheduler, error) {
	s := &Scheduler{
		l:        l,
		cron:     cron.New(),
		reportUC: reportUC,
		exportUC: exportUC,
	}

	if _, err := s.cron.AddFunc(spec, s.runExportJob); err != nil {
		return nil, fmt.Errorf("scheduler: invalid export spec %q: %w", spec, err)
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.l.Infof(context.Background(), "scheduler.Start: %d job(s) scheduled", len(s.cron.Entries()))
}

// Stop stops the scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.l.Info(context.Background(), "scheduler.Stop: stopped")
}

func (s *Scheduler) runExportJob() {
	ctx := context.Background()
	if err := s.RunExports(ctx); err != nil {
		s.l.Errorf(ctx, "scheduler.runExportJob: %v", err)
	}
}

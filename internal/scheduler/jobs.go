package scheduler

import (
	"context"
	"errors"

	"dashboard-srv/internal/export"
	"dashboard-srv/internal/report"
)

// RunExports stores the latest publication summary and the latest day's
// user summary. Both are attempted even if one fails.
func (s *Scheduler) RunExports(ctx context.Context) error {
	var errs []error

	out, err := s.exportUC.Store(ctx, export.StoreInput{Kind: export.KindPublications})
	if err != nil {
		errs = append(errs, err)
	} else {
		s.l.Infof(ctx, "scheduler.RunExports: stored %s", out.ObjectName)
	}

	days, err := s.reportUC.AvailableBuckets(ctx, report.BucketDay)
	if err != nil {
		return errors.Join(append(errs, err)...)
	}
	if len(days) == 0 {
		s.l.Infof(ctx, "scheduler.RunExports: no log dates, skipping user summary")
		return errors.Join(errs...)
	}

	out, err = s.exportUC.Store(ctx, export.StoreInput{
		Kind: export.KindUsers,
		Users: export.UserInput{
			Bucket:     report.BucketDay,
			Selections: days[:1],
		},
	})
	if err != nil {
		errs = append(errs, err)
	} else {
		s.l.Infof(ctx, "scheduler.RunExports: stored %s", out.ObjectName)
	}

	return errors.Join(errs...)
}

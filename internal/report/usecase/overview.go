package usecase

import (
	"context"
	"errors"

	"dashboard-srv/internal/report"

	"golang.org/x/sync/errgroup"
)

// Overview computes the landing page figures concurrently. The snapshot is
// read-only so the aggregators need no locking.
func (uc *implUseCase) Overview(ctx context.Context) (report.OverviewOutput, error) {
	var output report.OverviewOutput

	g, ctx := errgroup.WithContext(ctx)

	// Task 1: Daily table and latest day metrics
	g.Go(func() error {
		daily, err := uc.DailySummary(ctx)
		if err != nil {
			return err
		}
		metrics, err := uc.DayMetrics(ctx, report.DayMetricsInput{})
		if err != nil {
			return err
		}
		output.Daily = daily
		output.Metrics = metrics
		return nil
	})

	// Task 2: Publications around the latest publication date
	g.Go(func() error {
		rows, err := uc.SelectPublications(ctx, report.SelectPublicationsInput{})
		if err != nil {
			return err
		}
		output.Publications = rows
		return nil
	})

	// Task 3: Latest day user summary
	g.Go(func() error {
		buckets, err := uc.AvailableBuckets(ctx, report.BucketDay)
		if err != nil {
			return err
		}
		if len(buckets) == 0 {
			output.Users = report.UserPeriodOutput{Bucket: report.BucketDay}
			return nil
		}
		users, err := uc.UserPeriodSummary(ctx, report.UserPeriodInput{
			Bucket:     report.BucketDay,
			Selections: buckets[:1],
		})
		if err != nil && !errors.Is(err, report.ErrEmptySelection) {
			return err
		}
		output.Users = users
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "report.usecase.Overview: %v", err)
		return report.OverviewOutput{}, err
	}

	return output, nil
}

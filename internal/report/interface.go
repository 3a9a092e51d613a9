package report

import (
	"context"
	"time"
)

//go:generate mockery --name UseCase
type UseCase interface {
	DailySummary(ctx context.Context) ([]DailyRow, error)
	AvailableDates(ctx context.Context) ([]time.Time, error)
	DayMetrics(ctx context.Context, input DayMetricsInput) (DayMetrics, error)

	PublicationSummary(ctx context.Context) ([]PublicationRow, error)
	PublicationDates(ctx context.Context) ([]time.Time, error)
	SelectPublications(ctx context.Context, input SelectPublicationsInput) ([]PublicationRow, error)

	AvailableBuckets(ctx context.Context, bucket Bucket) ([]string, error)
	UserPeriodSummary(ctx context.Context, input UserPeriodInput) (UserPeriodOutput, error)

	Overview(ctx context.Context) (OverviewOutput, error)
}

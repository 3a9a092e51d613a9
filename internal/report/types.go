package report

import (
	"strings"
	"time"

	"dashboard-srv/internal/model"
	"dashboard-srv/pkg/util"
)

// Bucket is the time grouping of the user-period summary.
type Bucket string

const (
	BucketDay   Bucket = "day"
	BucketWeek  Bucket = "week"
	BucketMonth Bucket = "month"
)

// FilterAll disables a team or user filter.
const FilterAll = "All"

// ParseBucket parses a view name case-insensitively.
func ParseBucket(s string) (Bucket, error) {
	switch Bucket(strings.ToLower(strings.TrimSpace(s))) {
	case BucketDay:
		return BucketDay, nil
	case BucketWeek:
		return BucketWeek, nil
	case BucketMonth:
		return BucketMonth, nil
	default:
		return "", ErrInvalidView
	}
}

// Workdays is the number of working days one bucket stands for.
func (b Bucket) Workdays() float64 {
	switch b {
	case BucketWeek:
		return 5
	case BucketMonth:
		return 22
	default:
		return 1
	}
}

// Label returns the bucket value of a log entry.
func (b Bucket) Label(e model.LogEntry) string {
	switch b {
	case BucketWeek:
		return e.Week
	case BucketMonth:
		return e.Month
	default:
		return util.DateToStr(e.LogDate)
	}
}

// ValidLabel reports whether s has the label shape of the bucket.
func (b Bucket) ValidLabel(s string) bool {
	switch b {
	case BucketWeek:
		return util.IsWeekLabel(s)
	case BucketMonth:
		_, err := util.StrToMonth(s)
		return err == nil && len(s) == len(util.MonthFormat)
	default:
		_, err := util.StrToDate(s)
		return err == nil && len(s) == len(util.DateFormat)
	}
}

// Targets are the per-user daily point targets.
type Targets struct {
	ProductionPerUser float64
	QCPerUser         float64
	HoursPerDay       float64
	WindowSize        int
}

// DefaultTargets returns the standard thresholds.
func DefaultTargets() Targets {
	return Targets{
		ProductionPerUser: 1200,
		QCPerUser:         2000,
		HoursPerDay:       8,
		WindowSize:        5,
	}
}

// DailyRow is the Production/QC point total of one log date.
type DailyRow struct {
	Date       time.Time
	Production float64
	QC         float64
}

type DayMetricsInput struct {
	// Date to report on. The zero value selects the latest log date.
	Date time.Time
}

// ActivityMetrics are the day figures of one activity.
type ActivityMetrics struct {
	Points      float64
	Users       int
	Target      float64
	ProgressPct float64
	RatePerHour float64
}

type DayMetrics struct {
	Date       time.Time
	Production ActivityMetrics
	QC         ActivityMetrics
	// Window holds the most recent log dates, newest first.
	Window []DailyRow
}

// PublicationRow is the rollup of one publication.
type PublicationRow struct {
	Publication   string
	TotalGrids    int
	Points        float64
	Output        float64
	ProdComp      int
	QCComp        int
	ProdIP        int
	QCIP          int
	LatestDate    time.Time // zero when the publication has no log rows
	CompletionPct float64
}

// HasLatestDate reports whether the publication has log activity.
func (r PublicationRow) HasLatestDate() bool {
	return !r.LatestDate.IsZero()
}

type SelectPublicationsInput struct {
	// All returns every publication and ignores Date.
	All bool
	// Date is the anchor date. The zero value selects the latest publication date.
	Date time.Time
}

type UserPeriodInput struct {
	Bucket     Bucket
	Selections []string
	Team       string
	User       string
}

type UserPeriodRow struct {
	User       string
	Production float64
	QC         float64
	Total      float64
	ProdEff    float64
	QCEff      float64
	Quality    float64
	TeamGroup  string
	// Per selected bucket, in the order of UserPeriodOutput.Selections.
	ProductionByBucket []float64
	QCByBucket         []float64
}

type UserPeriodOutput struct {
	Bucket     Bucket
	Selections []string
	Rows       []UserPeriodRow
}

// IsMultiBucket reports whether n selections of bucket form a multi-bucket
// view. Several days still render as a single view.
func IsMultiBucket(b Bucket, n int) bool {
	return b != BucketDay && n > 1
}

// MultiBucket reports whether the output spans several week or month buckets.
func (o UserPeriodOutput) MultiBucket() bool {
	return IsMultiBucket(o.Bucket, len(o.Selections))
}

type OverviewOutput struct {
	Daily        []DailyRow
	Metrics      DayMetrics
	Publications []PublicationRow
	Users        UserPeriodOutput
}

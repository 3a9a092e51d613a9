package usecase

import (
	"fmt"
	"strings"

	"dashboard-srv/internal/report"
)

const (
	dailyFileName       = "daily_summary.csv"
	publicationFileName = "publication_summary.csv"
)

// userFileName names a user summary export after its view and selections.
func userFileName(out report.UserPeriodOutput) string {
	joined := strings.Join(out.Selections, "_")
	if out.MultiBucket() {
		switch out.Bucket {
		case report.BucketWeek:
			return fmt.Sprintf("weekly_summary_%s.csv", joined)
		case report.BucketMonth:
			return fmt.Sprintf("monthly_summary_%s.csv", joined)
		}
	}
	return fmt.Sprintf("user_summary_%s_%s.csv", out.Bucket, joined)
}

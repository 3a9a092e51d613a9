package util

import (
	"fmt"
	"regexp"
	"time"
)

const (
	DateTimeFormat = "2006-01-02 15:04:05"
	DateFormat     = "2006-01-02"
	MonthFormat    = "2006-01"
	// DayMonthFormat is how work-log dates are entered: day and abbreviated month, no year.
	DayMonthFormat = "2-Jan"
)

var weekLabelPattern = regexp.MustCompile(`^\d{4}-W\d{2}$`)

// StrToDate parses a DateFormat string as a UTC calendar date.
func StrToDate(str string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, str, time.UTC)
}

// StrToMonth parses a MonthFormat string as the first day of that month in UTC.
func StrToMonth(str string) (time.Time, error) {
	return time.ParseInLocation(MonthFormat, str, time.UTC)
}

func DateToStr(dt time.Time) string {
	return dt.Format(DateFormat)
}

func DateTimeToStr(dt time.Time) string {
	return dt.Format(DateTimeFormat)
}

// WeekLabel returns the ISO week label of t, e.g. "2025-W07".
func WeekLabel(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// MonthLabel returns the month label of t, e.g. "2025-02".
func MonthLabel(t time.Time) string {
	return t.Format(MonthFormat)
}

// IsWeekLabel reports whether s has the WeekLabel shape and a week number in 1..53.
func IsWeekLabel(s string) bool {
	if !weekLabelPattern.MatchString(s) {
		return false
	}
	var year, week int
	if _, err := fmt.Sscanf(s, "%04d-W%02d", &year, &week); err != nil {
		return false
	}
	return week >= 1 && week <= 53
}

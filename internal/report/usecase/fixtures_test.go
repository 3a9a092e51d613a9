package usecase

import (
	"time"

	"dashboard-srv/internal/model"
	"dashboard-srv/internal/report"
	"dashboard-srv/internal/report/repository"
	"dashboard-srv/pkg/log"
	"dashboard-srv/pkg/util"
)

func day(month time.Month, d int) time.Time {
	return time.Date(2025, month, d, 0, 0, 0, 0, time.UTC)
}

func entry(user, activity, status string, date time.Time, points float64) model.LogEntry {
	return model.LogEntry{
		User:     user,
		Activity: activity,
		Status:   status,
		Points:   points,
		Date:     date.Format(util.DayMonthFormat),
		LogDate:  date,
		Week:     util.WeekLabel(date),
		Month:    util.MonthLabel(date),
	}
}

func withFeedback(e model.LogEntry, to string, errs float64) model.LogEntry {
	e.FeedbackTo = to
	e.Error = errs
	return e
}

func withPublication(e model.LogEntry, pub string) model.LogEntry {
	e.Publication = pub
	return e
}

func newTestUseCase(logs []model.LogEntry, configs []model.ConfigEntry, team []model.TeamMember) *implUseCase {
	return newTestUseCaseWithCache(logs, configs, team, nil)
}

func newTestUseCaseWithCache(logs []model.LogEntry, configs []model.ConfigEntry, team []model.TeamMember, cache repository.CacheRepository) *implUseCase {
	snap := model.NewSnapshot(logs, configs, team, day(6, 30), "test-fingerprint")
	return New(snap, cache, log.NewNop(), Config{Targets: report.DefaultTargets()}).(*implUseCase)
}

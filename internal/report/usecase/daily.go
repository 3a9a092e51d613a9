package usecase

import (
	"context"
	"sort"
	"time"

	"dashboard-srv/internal/model"
	"dashboard-srv/internal/report"
)

func (uc *implUseCase) DailySummary(ctx context.Context) ([]report.DailyRow, error) {
	return uc.dailyRows(), nil
}

func (uc *implUseCase) AvailableDates(ctx context.Context) ([]time.Time, error) {
	rows := uc.dailyRows()
	dates := make([]time.Time, len(rows))
	for i, r := range rows {
		dates[i] = r.Date
	}
	return dates, nil
}

func (uc *implUseCase) DayMetrics(ctx context.Context, input report.DayMetricsInput) (report.DayMetrics, error) {
	rows := uc.dailyRows()

	date := input.Date
	if date.IsZero() && len(rows) > 0 {
		date = rows[0].Date
	}

	out := report.DayMetrics{Date: date}
	if n := uc.config.Targets.WindowSize; len(rows) > n {
		out.Window = rows[:n]
	} else {
		out.Window = rows
	}
	if date.IsZero() {
		return out, nil
	}

	var prodPoints, qcPoints float64
	prodUsers := map[string]struct{}{}
	qcUsers := map[string]struct{}{}
	for _, e := range uc.snap.Logs() {
		if !e.LogDate.Equal(date) {
			continue
		}
		switch e.Activity {
		case model.ActivityProduction:
			prodPoints += e.Points
			prodUsers[e.User] = struct{}{}
		case model.ActivityQC:
			qcPoints += e.Points
			qcUsers[e.User] = struct{}{}
		}
	}

	targets := uc.config.Targets
	out.Production = activityMetrics(prodPoints, len(prodUsers), targets.ProductionPerUser, targets.HoursPerDay)
	out.QC = activityMetrics(qcPoints, len(qcUsers), targets.QCPerUser, targets.HoursPerDay)

	return out, nil
}

func activityMetrics(points float64, users int, perUser, hours float64) report.ActivityMetrics {
	target := perUser * float64(users)
	return report.ActivityMetrics{
		Points:      points,
		Users:       users,
		Target:      target,
		ProgressPct: round1(safeDiv(points, target) * 100),
		RatePerHour: round1(safeDiv(points, float64(users)*hours)),
	}
}

// dailyRows pivots Production and QC points by log date, newest first.
func (uc *implUseCase) dailyRows() []report.DailyRow {
	byDate := make(map[time.Time]*report.DailyRow)
	for _, e := range uc.snap.Logs() {
		if !e.IsProductionOrQC() {
			continue
		}
		row, ok := byDate[e.LogDate]
		if !ok {
			row = &report.DailyRow{Date: e.LogDate}
			byDate[e.LogDate] = row
		}
		if e.Activity == model.ActivityProduction {
			row.Production += e.Points
		} else {
			row.QC += e.Points
		}
	}

	rows := make([]report.DailyRow, 0, len(byDate))
	for _, r := range byDate {
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.After(rows[j].Date) })
	return rows
}

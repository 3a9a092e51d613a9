package usecase

import (
	"context"
	"sort"

	"dashboard-srv/internal/model"
	"dashboard-srv/internal/report"
)

const kindUsers = "users"

func (uc *implUseCase) AvailableBuckets(ctx context.Context, bucket report.Bucket) ([]string, error) {
	bucket, err := report.ParseBucket(string(bucket))
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{})
	for _, e := range uc.snap.Logs() {
		set[bucket.Label(e)] = struct{}{}
	}
	labels := make([]string, 0, len(set))
	for l := range set {
		labels = append(labels, l)
	}
	// Labels are zero padded so lexical order is chronological
	sort.Sort(sort.Reverse(sort.StringSlice(labels)))
	return labels, nil
}

func (uc *implUseCase) UserPeriodSummary(ctx context.Context, input report.UserPeriodInput) (report.UserPeriodOutput, error) {
	bucket, err := report.ParseBucket(string(input.Bucket))
	if err != nil {
		return report.UserPeriodOutput{}, err
	}
	selections, err := normalizeSelections(bucket, input.Selections)
	if err != nil {
		return report.UserPeriodOutput{}, err
	}

	params := append([]string{string(bucket), input.Team, input.User}, selections...)
	return cached(ctx, uc, kindUsers, params, func() (report.UserPeriodOutput, error) {
		multi := report.IsMultiBucket(bucket, len(selections))
		rows := uc.userPeriodRows(bucket, selections, multi)
		rows = filterUserRows(rows, input.Team, input.User)
		sortUserRows(rows, multi)
		return report.UserPeriodOutput{
			Bucket:     bucket,
			Selections: selections,
			Rows:       rows,
		}, nil
	})
}

type userAcc struct {
	production []float64
	qc         []float64
}

type feedbackAcc struct {
	errors float64
	points float64
}

// userPeriodRows rolls up points per user over the selected buckets. Only
// Comp/IP Production and QC rows count toward points; quality uses every
// feedback row in the selected buckets. Multi-bucket views truncate the
// ratios to whole numbers, single views round them to one decimal.
func (uc *implUseCase) userPeriodRows(bucket report.Bucket, selections []string, multi bool) []report.UserPeriodRow {
	position := make(map[string]int, len(selections))
	for i, s := range selections {
		position[s] = i
	}

	users := make(map[string]*userAcc)
	feedback := make(map[string]*feedbackAcc)
	for _, e := range uc.snap.Logs() {
		pos, ok := position[bucket.Label(e)]
		if !ok {
			continue
		}

		if e.HasFeedback() {
			fb, ok := feedback[e.FeedbackTo]
			if !ok {
				fb = &feedbackAcc{}
				feedback[e.FeedbackTo] = fb
			}
			fb.errors += e.Error
			fb.points += e.Points
		}

		if e.User == "" || !e.IsCompOrIP() || !e.IsProductionOrQC() {
			continue
		}
		acc, ok := users[e.User]
		if !ok {
			acc = &userAcc{production: make([]float64, len(selections)), qc: make([]float64, len(selections))}
			users[e.User] = acc
		}
		if e.Activity == model.ActivityProduction {
			acc.production[pos] += e.Points
		} else {
			acc.qc[pos] += e.Points
		}
	}

	targets := uc.config.Targets
	workdays := bucket.Workdays() * float64(len(selections))
	finish := round1
	if multi {
		finish = truncate
	}

	rows := make([]report.UserPeriodRow, 0, len(users))
	for user, acc := range users {
		row := report.UserPeriodRow{
			User:               user,
			Production:         sum(acc.production),
			QC:                 sum(acc.qc),
			TeamGroup:          uc.snap.TeamGroup(user),
			ProductionByBucket: acc.production,
			QCByBucket:         acc.qc,
			Quality:            100,
		}
		row.Total = row.Production + row.QC
		row.ProdEff = finish(safeDiv(row.Production, targets.ProductionPerUser*workdays) * 100)
		row.QCEff = finish(safeDiv(row.QC, targets.QCPerUser*workdays) * 100)
		if fb, ok := feedback[user]; ok && fb.points != 0 {
			row.Quality = finish(100 - fb.errors/fb.points*100)
		}
		rows = append(rows, row)
	}
	return rows
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

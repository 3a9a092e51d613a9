package usecase

import (
	"sort"
	"strings"

	"dashboard-srv/internal/report"
)

// normalizeSelections trims, validates and de-duplicates selections,
// keeping the first occurrence order.
func normalizeSelections(bucket report.Bucket, selections []string) ([]string, error) {
	seen := make(map[string]struct{}, len(selections))
	out := make([]string, 0, len(selections))
	for _, s := range selections {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if !bucket.ValidLabel(s) {
			return nil, report.ErrInvalidSelection
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, report.ErrEmptySelection
	}
	return out, nil
}

func filterActive(value string) bool {
	return value != "" && value != report.FilterAll
}

func filterUserRows(rows []report.UserPeriodRow, team, user string) []report.UserPeriodRow {
	if !filterActive(team) && !filterActive(user) {
		return rows
	}
	out := rows[:0]
	for _, r := range rows {
		if filterActive(team) && r.TeamGroup != team {
			continue
		}
		if filterActive(user) && r.User != user {
			continue
		}
		out = append(out, r)
	}
	return out
}

// sortUserRows orders by efficiency descending. Multi-bucket views also
// rank by quality. Ties fall back to user name.
func sortUserRows(rows []report.UserPeriodRow, multi bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.ProdEff != b.ProdEff {
			return a.ProdEff > b.ProdEff
		}
		if a.QCEff != b.QCEff {
			return a.QCEff > b.QCEff
		}
		if multi && a.Quality != b.Quality {
			return a.Quality > b.Quality
		}
		return a.User < b.User
	})
}

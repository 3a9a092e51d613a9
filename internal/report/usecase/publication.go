package usecase

import (
	"context"
	"sort"
	"strconv"
	"time"

	"dashboard-srv/internal/report"
	"dashboard-srv/pkg/util"
)

const kindPublications = "publications"

func (uc *implUseCase) PublicationSummary(ctx context.Context) ([]report.PublicationRow, error) {
	return cached(ctx, uc, kindPublications, nil, func() ([]report.PublicationRow, error) {
		return uc.publicationRows(), nil
	})
}

func (uc *implUseCase) PublicationDates(ctx context.Context) ([]time.Time, error) {
	rows, err := uc.PublicationSummary(ctx)
	if err != nil {
		return nil, err
	}
	set := make(map[time.Time]struct{})
	for _, r := range rows {
		if r.HasLatestDate() {
			set[r.LatestDate] = struct{}{}
		}
	}
	return distinctDatesDesc(set), nil
}

// SelectPublications returns the publications last active on input.Date,
// topped up with the most recent older ones until PublicationTopN rows.
// A zero Date selects the latest publication date.
func (uc *implUseCase) SelectPublications(ctx context.Context, input report.SelectPublicationsInput) ([]report.PublicationRow, error) {
	params := []string{strconv.FormatBool(input.All), util.DateToStr(input.Date)}
	return cached(ctx, uc, kindPublications+".select", params, func() ([]report.PublicationRow, error) {
		rows, err := uc.PublicationSummary(ctx)
		if err != nil {
			return nil, err
		}
		if input.All {
			return rows, nil
		}
		date := input.Date
		if date.IsZero() {
			// rows are sorted newest first
			if len(rows) == 0 || !rows[0].HasLatestDate() {
				return rows, nil
			}
			date = rows[0].LatestDate
		}
		return selectTopN(rows, date, uc.config.PublicationTopN), nil
	})
}

// selectTopN expects rows sorted newest first.
func selectTopN(rows []report.PublicationRow, date time.Time, n int) []report.PublicationRow {
	var exact, older []report.PublicationRow
	for _, r := range rows {
		if !r.HasLatestDate() {
			continue
		}
		switch {
		case r.LatestDate.Equal(date):
			exact = append(exact, r)
		case r.LatestDate.Before(date):
			older = append(older, r)
		}
	}

	selected := exact
	if need := n - len(exact); need > 0 {
		if need > len(older) {
			need = len(older)
		}
		selected = append(selected, older[:need]...)
	}
	sortPublications(selected)
	return selected
}

type publicationAcc struct {
	row   report.PublicationRow
	grids map[string]struct{}
}

func (uc *implUseCase) publicationRows() []report.PublicationRow {
	accs := make(map[string]*publicationAcc)
	get := func(name string) *publicationAcc {
		a, ok := accs[name]
		if !ok {
			a = &publicationAcc{row: report.PublicationRow{Publication: name}, grids: map[string]struct{}{}}
			accs[name] = a
		}
		return a
	}

	for _, c := range uc.snap.Configs() {
		if c.Publication == "" {
			continue
		}
		a := get(c.Publication)
		if c.Grid != "" {
			a.grids[c.Grid] = struct{}{}
		}
		a.row.Points += c.Points
		a.row.Output += c.GridPoint
		if c.IsProductionComplete() {
			a.row.ProdComp++
		}
		if c.IsQCComplete() {
			a.row.QCComp++
		}
	}

	for _, e := range uc.snap.Logs() {
		if e.Publication == "" {
			continue
		}
		a := get(e.Publication)
		if e.LogDate.After(a.row.LatestDate) {
			a.row.LatestDate = e.LogDate
		}
	}

	rows := make([]report.PublicationRow, 0, len(accs))
	for _, a := range accs {
		rows = append(rows, finishPublication(a))
	}
	sortPublications(rows)
	return rows
}

func finishPublication(a *publicationAcc) report.PublicationRow {
	row := a.row
	row.TotalGrids = len(a.grids)
	row.ProdIP = row.TotalGrids - row.ProdComp
	row.QCIP = row.TotalGrids - row.QCComp
	if row.TotalGrids > 0 {
		row.CompletionPct = round1(float64(row.ProdComp) / float64(row.TotalGrids) * 100)
	}
	return row
}

// sortPublications orders by latest date descending, undated rows last,
// then by name.
func sortPublications(rows []report.PublicationRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.HasLatestDate() != b.HasLatestDate() {
			return a.HasLatestDate()
		}
		if !a.LatestDate.Equal(b.LatestDate) {
			return a.LatestDate.After(b.LatestDate)
		}
		return a.Publication < b.Publication
	})
}

package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"dashboard-srv/internal/model"
	"dashboard-srv/internal/snapshot"
	"dashboard-srv/pkg/util"
)

// Column names as they appear in the source headers.
const (
	colDate           = "Date"
	colUser           = "User"
	colActivity       = "Activity"
	colPoints         = "Points"
	colStatus         = "Status"
	colError          = "Error"
	colFeedbackTo     = "QC Feedback to"
	colPublication    = "Publication"
	colGrid           = "Grid"
	colGridPoint      = "Grid point"
	colLatestStatus   = "Latest Status"
	colLatestActivity = "Latest Activity"
	colQCAcceptance   = "QC Acceptance"
	colTeamGroup      = "Team_Group"
)

var (
	logRequired    = []string{colDate, colUser, colActivity, colPoints}
	configRequired = []string{colPublication, colGrid}
	teamRequired   = []string{colUser, colTeamGroup}
)

// columnKey folds a header so that "QC Feedback to", "qc_feedback_to" and
// "QCFeedbackTo" address the same column.
func columnKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if r == ' ' || r == '_' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// header maps folded column names to their index. The first duplicate wins.
type header map[string]int

func newHeader(row []string, required []string) (header, error) {
	h := make(header, len(row))
	for i, name := range row {
		key := columnKey(strings.TrimPrefix(name, "\ufeff"))
		if _, ok := h[key]; !ok && key != "" {
			h[key] = i
		}
	}
	for _, col := range required {
		if _, ok := h[columnKey(col)]; !ok {
			return nil, fmt.Errorf("%w: %s", snapshot.ErrMissingColumn, col)
		}
	}
	return h, nil
}

// cell returns the trimmed value of column col in row, or "" when absent.
func (h header) cell(row []string, col string) string {
	idx, ok := h[columnKey(col)]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func (h header) number(row []string, col string) float64 {
	return parseNumber(h.cell(row, col))
}

// parseNumber parses a numeric cell. Empty or non-numeric cells are 0.
func parseNumber(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseLogDate parses a day-month cell such as "05-Jun" into a date in year.
// Days that do not exist in year are rejected.
func parseLogDate(raw string, year int) (time.Time, bool) {
	t, err := time.Parse(util.DayMonthFormat, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, false
	}
	d := time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	if d.Day() != t.Day() {
		return time.Time{}, false
	}
	return d, true
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// normalizeLogs builds log entries and reports how many rows were dropped for
// an unparseable date.
func normalizeLogs(rows [][]string, year int) ([]model.LogEntry, int, error) {
	h, err := newHeader(rows[0], logRequired)
	if err != nil {
		return nil, 0, err
	}

	entries := make([]model.LogEntry, 0, len(rows)-1)
	dropped := 0
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		raw := h.cell(row, colDate)
		logDate, ok := parseLogDate(raw, year)
		if !ok {
			dropped++
			continue
		}
		entries = append(entries, model.LogEntry{
			User:        h.cell(row, colUser),
			Activity:    h.cell(row, colActivity),
			Date:        raw,
			Points:      h.number(row, colPoints),
			Status:      h.cell(row, colStatus),
			Error:       h.number(row, colError),
			FeedbackTo:  h.cell(row, colFeedbackTo),
			Publication: h.cell(row, colPublication),
			Grid:        h.cell(row, colGrid),
			GridPoint:   h.number(row, colGridPoint),
			LogDate:     logDate,
			Week:        util.WeekLabel(logDate),
			Month:       util.MonthLabel(logDate),
		})
	}
	return entries, dropped, nil
}

func normalizeConfigs(rows [][]string) ([]model.ConfigEntry, error) {
	h, err := newHeader(rows[0], configRequired)
	if err != nil {
		return nil, err
	}

	entries := make([]model.ConfigEntry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		entries = append(entries, model.ConfigEntry{
			Publication:    h.cell(row, colPublication),
			Grid:           h.cell(row, colGrid),
			Points:         h.number(row, colPoints),
			GridPoint:      h.number(row, colGridPoint),
			LatestStatus:   h.cell(row, colLatestStatus),
			LatestActivity: h.cell(row, colLatestActivity),
			QCAcceptance:   h.cell(row, colQCAcceptance),
		})
	}
	return entries, nil
}

func normalizeTeam(rows [][]string) ([]model.TeamMember, error) {
	h, err := newHeader(rows[0], teamRequired)
	if err != nil {
		return nil, err
	}

	members := make([]model.TeamMember, 0, len(rows)-1)
	for _, row := range rows[1:] {
		user := h.cell(row, colUser)
		if user == "" {
			continue
		}
		members = append(members, model.TeamMember{
			User:      user,
			TeamGroup: h.cell(row, colTeamGroup),
		})
	}
	return members, nil
}

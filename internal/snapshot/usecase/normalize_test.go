package usecase

import (
	"testing"
	"time"

	"dashboard-srv/internal/snapshot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		year int
		want time.Time
		ok   bool
	}{
		{"padded day", "05-Jun", 2025, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), true},
		{"single digit day", "5-Jun", 2025, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), true},
		{"lower case month", "12-jan", 2025, time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC), true},
		{"surrounding spaces", " 1-Dec ", 2024, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), true},
		{"leap day in leap year", "29-Feb", 2024, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), true},
		{"leap day in common year", "29-Feb", 2025, time.Time{}, false},
		{"iso date", "2025-06-05", 2025, time.Time{}, false},
		{"empty", "", 2025, time.Time{}, false},
		{"out of range", "32-Jan", 2025, time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseLogDate(tt.raw, tt.year)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "got %v", got)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 12.5, parseNumber("12.5"))
	assert.Equal(t, 1200.0, parseNumber("1,200"))
	assert.Equal(t, 0.0, parseNumber(""))
	assert.Equal(t, 0.0, parseNumber("n/a"))
}

func TestColumnKey(t *testing.T) {
	assert.Equal(t, columnKey("QC Feedback to"), columnKey("qc_feedback_to"))
	assert.Equal(t, columnKey("Team_Group"), columnKey("Team Group"))
	assert.Equal(t, columnKey("Grid point"), columnKey(" GRID_POINT "))
}

func TestNormalizeLogs(t *testing.T) {
	rows := [][]string{
		{"Date", " User ", "Activity", "Points", "Status", "Error", "QC Feedback to", "Publication", "Grid", "Grid point"},
		{"05-Jun", " alice ", "Production", "100", "Comp", "", "", "Pub A", "G1", "3"},
		{"06-Jun", "bob", "QC", "abc", "IP", "2", "alice", "Pub A", "G1", ""},
		{"not a date", "carol", "QC", "10", "Comp", "", "", "", "", ""},
		{"", "", "", "", "", "", "", "", "", ""},
		{"07-Jun", "dave"},
	}

	entries, dropped, err := normalizeLogs(rows, 2025)
	require.NoError(t, err)
	assert.Equal(t, 1, dropped)
	require.Len(t, entries, 3)

	assert.Equal(t, "alice", entries[0].User)
	assert.Equal(t, 100.0, entries[0].Points)
	assert.Equal(t, 3.0, entries[0].GridPoint)
	assert.Equal(t, "2025-W23", entries[0].Week)
	assert.Equal(t, "2025-06", entries[0].Month)

	assert.Equal(t, 0.0, entries[1].Points)
	assert.Equal(t, 2.0, entries[1].Error)
	assert.Equal(t, "alice", entries[1].FeedbackTo)

	assert.Equal(t, "dave", entries[2].User)
	assert.Empty(t, entries[2].Activity)
}

func TestNormalizeMissingColumn(t *testing.T) {
	_, _, err := normalizeLogs([][]string{{"Date", "User", "Activity"}}, 2025)
	assert.ErrorIs(t, err, snapshot.ErrMissingColumn)
	assert.Contains(t, err.Error(), "Points")

	_, err = normalizeConfigs([][]string{{"Publication"}})
	assert.ErrorIs(t, err, snapshot.ErrMissingColumn)

	_, err = normalizeTeam([][]string{{"User", "Team"}})
	assert.ErrorIs(t, err, snapshot.ErrMissingColumn)
}

func TestNormalizeConfigs(t *testing.T) {
	rows := [][]string{
		{"Publication", "Grid", "Points", "Grid point", "Latest Status", "Latest Activity", "QC Acceptance"},
		{"Pub A", "G1", "10", "2", " Comp ", "Production", "Accepted"},
		{"Pub A", "G2", "", "", "IP", "QC", ""},
	}

	entries, err := normalizeConfigs(rows)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Comp", entries[0].LatestStatus)
	assert.True(t, entries[0].IsQCComplete())
	assert.True(t, entries[1].IsProductionComplete())
	assert.Equal(t, 0.0, entries[1].Points)
}

func TestNormalizeTeamSkipsBlankUsers(t *testing.T) {
	rows := [][]string{
		{"User", "Team_Group"},
		{"alice", "Alpha"},
		{"  ", "Beta"},
	}

	members, err := normalizeTeam(rows)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Alpha", members[0].TeamGroup)
}

package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"dashboard-srv/internal/snapshot"
	"dashboard-srv/internal/snapshot/repository"
	"dashboard-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeSourceRepository struct {
	files map[string][]byte
	err   map[string]error
}

func (f *fakeSourceRepository) Read(ctx context.Context, location string) ([]byte, error) {
	if err, ok := f.err[location]; ok {
		return nil, err
	}
	data, ok := f.files[location]
	if !ok {
		return nil, fmt.Errorf("%w: %s", repository.ErrNotFound, location)
	}
	return data, nil
}

const (
	testLogCSV = "Date,User,Activity,Points,Status,Error,QC Feedback to,Publication,Grid,Grid point\n" +
		"05-Jun,alice,Production,100,Comp,,,Pub A,G1,3\n" +
		"29-Feb,bob,QC,50,Comp,,,Pub A,G1,\n"
	testConfigCSV = "Publication,Grid,Points,Grid point,Latest Status,Latest Activity,QC Acceptance\n" +
		"Pub A,G1,10,2,Comp,Production,Accepted\n"
)

func buildTeamXLSX(t *testing.T, rows [][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		require.NoError(t, f.SetSheetRow(sheet, cell, &values))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func newTestUseCase(repo repository.SourceRepository) snapshot.UseCase {
	return New(repo, log.NewNop(), Config{
		Sources: snapshot.Sources{Log: "Log.csv", Config: "Config.csv", Team: "team.xlsx"},
		Now:     func() time.Time { return time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC) },
	})
}

func TestLoad(t *testing.T) {
	repo := &fakeSourceRepository{files: map[string][]byte{
		"Log.csv":    []byte(testLogCSV),
		"Config.csv": []byte(testConfigCSV),
		"team.xlsx":  buildTeamXLSX(t, [][]string{{"User", "Team_Group"}, {"alice", "Alpha"}, {"alice", "Beta"}}),
	}}

	snap, err := newTestUseCase(repo).Load(context.Background())
	require.NoError(t, err)

	// 29-Feb does not exist in 2025
	require.Len(t, snap.Logs(), 1)
	assert.Equal(t, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), snap.Logs()[0].LogDate)
	require.Len(t, snap.Configs(), 1)
	assert.Equal(t, "Alpha", snap.TeamGroup("alice"))
	assert.Equal(t, "Unassigned", snap.TeamGroup("bob"))
	assert.Len(t, snap.Fingerprint(), 64)
}

func TestLoadFingerprintIsStable(t *testing.T) {
	files := map[string][]byte{
		"Log.csv":    []byte(testLogCSV),
		"Config.csv": []byte(testConfigCSV),
		"team.xlsx":  buildTeamXLSX(t, [][]string{{"User", "Team_Group"}, {"alice", "Alpha"}}),
	}
	uc := newTestUseCase(&fakeSourceRepository{files: files})

	first, err := uc.Load(context.Background())
	require.NoError(t, err)
	second, err := uc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.Fingerprint(), second.Fingerprint())

	files["Config.csv"] = []byte(testConfigCSV + "Pub B,G9,1,1,IP,Production,\n")
	third, err := uc.Load(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first.Fingerprint(), third.Fingerprint())
}

func TestLoadErrors(t *testing.T) {
	team := buildTeamXLSX(t, [][]string{{"User", "Team_Group"}})

	t.Run("missing source", func(t *testing.T) {
		repo := &fakeSourceRepository{files: map[string][]byte{"Log.csv": []byte(testLogCSV), "team.xlsx": team}}
		_, err := newTestUseCase(repo).Load(context.Background())
		assert.ErrorIs(t, err, snapshot.ErrSourceNotFound)
		assert.Contains(t, err.Error(), "config table at Config.csv")
	})

	t.Run("unreadable source", func(t *testing.T) {
		repo := &fakeSourceRepository{
			files: map[string][]byte{"Log.csv": []byte(testLogCSV), "Config.csv": []byte(testConfigCSV)},
			err:   map[string]error{"team.xlsx": repository.ErrUnreadable},
		}
		_, err := newTestUseCase(repo).Load(context.Background())
		assert.ErrorIs(t, err, snapshot.ErrSourceUnreadable)
	})

	t.Run("corrupt workbook", func(t *testing.T) {
		repo := &fakeSourceRepository{files: map[string][]byte{
			"Log.csv":    []byte(testLogCSV),
			"Config.csv": []byte(testConfigCSV),
			"team.xlsx":  []byte("not a zip"),
		}}
		_, err := newTestUseCase(repo).Load(context.Background())
		assert.ErrorIs(t, err, snapshot.ErrSourceUnreadable)
	})

	t.Run("missing column", func(t *testing.T) {
		repo := &fakeSourceRepository{files: map[string][]byte{
			"Log.csv":    []byte("Date,User,Activity\n05-Jun,alice,QC\n"),
			"Config.csv": []byte(testConfigCSV),
			"team.xlsx":  team,
		}}
		_, err := newTestUseCase(repo).Load(context.Background())
		assert.ErrorIs(t, err, snapshot.ErrMissingColumn)
		assert.Contains(t, err.Error(), "log table")
	})
}

func TestDecodeCSVStripsBOM(t *testing.T) {
	rows, err := decodeTable("Log.csv", append([]byte{0xEF, 0xBB, 0xBF}, []byte("Date,User\n1-Jan,a\n")...))
	require.NoError(t, err)
	assert.Equal(t, "Date", rows[0][0])
	assert.Len(t, rows, 2)
}

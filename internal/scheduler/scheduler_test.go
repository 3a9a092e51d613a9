package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"dashboard-srv/internal/export"
	"dashboard-srv/internal/model"
	"dashboard-srv/internal/report"
	reportUsecase "dashboard-srv/internal/report/usecase"
	"dashboard-srv/pkg/log"
	"dashboard-srv/pkg/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExport struct {
	export.UseCase
	inputs []export.StoreInput
	err    error
}

func (s *stubExport) Store(ctx context.Context, input export.StoreInput) (export.StoreOutput, error) {
	s.inputs = append(s.inputs, input)
	if s.err != nil {
		return export.StoreOutput{}, s.err
	}
	return export.StoreOutput{ObjectName: "exports/id/" + input.Kind + ".csv"}, nil
}

func newReportUseCase(dates ...time.Time) report.UseCase {
	var logs []model.LogEntry
	for _, d := range dates {
		logs = append(logs, model.LogEntry{
			User:     "alice",
			Activity: model.ActivityProduction,
			Status:   model.StatusComp,
			Points:   100,
			LogDate:  d,
			Week:     util.WeekLabel(d),
			Month:    util.MonthLabel(d),
		})
	}
	snap := model.NewSnapshot(logs, nil, nil, time.Now(), "fp")
	return reportUsecase.New(snap, nil, log.NewNop(), reportUsecase.Config{})
}

func TestNewRejectsInvalidSpec(t *testing.T) {
	_, err := New(log.NewNop(), newReportUseCase(), &stubExport{}, "every day")
	assert.Error(t, err)
}

func TestRunExports(t *testing.T) {
	exp := &stubExport{}
	s, err := New(log.NewNop(), newReportUseCase(
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
	), exp, "0 18 * * *")
	require.NoError(t, err)

	require.NoError(t, s.RunExports(context.Background()))
	require.Len(t, exp.inputs, 2)
	assert.Equal(t, export.KindPublications, exp.inputs[0].Kind)
	assert.Equal(t, export.KindUsers, exp.inputs[1].Kind)
	assert.Equal(t, []string{"2025-06-03"}, exp.inputs[1].Users.Selections)
}

func TestRunExportsWithoutLogs(t *testing.T) {
	exp := &stubExport{}
	s, err := New(log.NewNop(), newReportUseCase(), exp, "@daily")
	require.NoError(t, err)

	require.NoError(t, s.RunExports(context.Background()))
	assert.Len(t, exp.inputs, 1)
}

func TestRunExportsJoinsErrors(t *testing.T) {
	exp := &stubExport{err: export.ErrUploadFailed}
	s, err := New(log.NewNop(), newReportUseCase(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)), exp, "@hourly")
	require.NoError(t, err)

	err = s.RunExports(context.Background())
	assert.True(t, errors.Is(err, export.ErrUploadFailed))
	assert.Len(t, exp.inputs, 2)
}

func TestStartStop(t *testing.T) {
	s, err := New(log.NewNop(), newReportUseCase(), &stubExport{}, "@daily")
	require.NoError(t, err)

	s.Start()
	s.Stop()
}

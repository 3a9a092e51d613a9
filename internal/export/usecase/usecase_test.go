package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"testing"
	"time"

	"dashboard-srv/internal/export"
	"dashboard-srv/internal/model"
	"dashboard-srv/internal/report"
	reportUsecase "dashboard-srv/internal/report/usecase"
	"dashboard-srv/pkg/log"
	pkgMinio "dashboard-srv/pkg/minio"
	"dashboard-srv/pkg/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func logEntry(user, activity, pub string, date time.Time, points float64) model.LogEntry {
	return model.LogEntry{
		User:        user,
		Activity:    activity,
		Status:      model.StatusComp,
		Points:      points,
		Publication: pub,
		LogDate:     date,
		Week:        util.WeekLabel(date),
		Month:       util.MonthLabel(date),
	}
}

func newReportUseCase() report.UseCase {
	logs := []model.LogEntry{
		logEntry("alice", model.ActivityProduction, "Pub A", day(2), 600),
		logEntry("bob", model.ActivityQC, "Pub A", day(9), 1000.5),
	}
	configs := []model.ConfigEntry{
		{Publication: "Pub A", Grid: "G1", Points: 2.5, GridPoint: 1, LatestStatus: model.StatusComp},
		{Publication: "Pub A", Grid: "G2", Points: 1, LatestStatus: model.StatusIP, LatestActivity: model.ActivityProduction},
		{Publication: "Pub, Quoted", Grid: "G9", Points: 3},
	}
	team := []model.TeamMember{{User: "alice", TeamGroup: "A"}}
	snap := model.NewSnapshot(logs, configs, team, day(10), "fp")
	return reportUsecase.New(snap, nil, log.NewNop(), reportUsecase.Config{Targets: report.DefaultTargets()})
}

type fakeStorage struct {
	pkgMinio.MinIO
	uploaded  *pkgMinio.UploadRequest
	body      []byte
	uploadErr error
}

func (f *fakeStorage) UploadFile(ctx context.Context, req *pkgMinio.UploadRequest) (*pkgMinio.FileInfo, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	body, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, err
	}
	f.uploaded, f.body = req, body
	return &pkgMinio.FileInfo{BucketName: req.BucketName, ObjectName: req.ObjectName, Size: req.Size}, nil
}

func (f *fakeStorage) GetPresignedDownloadURL(ctx context.Context, req *pkgMinio.PresignedURLRequest) (*pkgMinio.PresignedURLResponse, error) {
	return &pkgMinio.PresignedURLResponse{
		URL:       "https://minio.local/" + req.BucketName + "/" + req.ObjectName,
		ExpiresAt: day(10).Add(req.Expiry),
		Method:    req.Method,
	}, nil
}

type fakeProducer struct {
	events []export.Completed
	err    error
}

func (f *fakeProducer) PublishExportCompleted(ctx context.Context, event export.Completed) error {
	f.events = append(f.events, event)
	return f.err
}

func newTestUseCase(storage pkgMinio.MinIO, producer export.Producer) *implUseCase {
	uc := New(newReportUseCase(), storage, producer, log.NewNop(), Config{Bucket: "dashboard-exports"}).(*implUseCase)
	uc.now = func() time.Time { return day(10) }
	uc.newID = func() string { return "fixed-id" }
	return uc
}

func TestPublicationCSV(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	file, err := uc.PublicationCSV(context.Background(), export.PublicationInput{All: true})
	require.NoError(t, err)

	assert.Equal(t, "publication_summary.csv", file.Name)
	assert.Equal(t, export.ContentTypeCSV, file.ContentType)
	want := "Publication,Total_Grids,Points,Output,Prod_Comp,QC_Comp,Prod_IP,QC_IP,Latest_Date,%_Completion\n" +
		"Pub A,2,3.5,1,1,0,1,2,2025-06-09,50\n" +
		"\"Pub, Quoted\",1,3,0,0,0,1,1,,0\n"
	assert.Equal(t, want, string(file.Data))
}

func TestDailyCSV(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	file, err := uc.DailyCSV(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "daily_summary.csv", file.Name)
	want := "Date,Production,QC\n" +
		"2025-06-09,0,1000.5\n" +
		"2025-06-02,600,0\n"
	assert.Equal(t, want, string(file.Data))
}

func TestPublicationCSVRoundTrip(t *testing.T) {
	uc := newTestUseCase(nil, nil)
	ctx := context.Background()

	rows, err := uc.report.SelectPublications(ctx, report.SelectPublicationsInput{All: true})
	require.NoError(t, err)
	file, err := uc.PublicationCSV(ctx, export.PublicationInput{All: true})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(rows)+1)
	assert.Equal(t, publicationHeader, records[0])
	for i, r := range rows {
		rec := records[i+1]
		assert.Equal(t, r.Publication, rec[0])
		assert.Equal(t, formatFloat(r.Points), rec[2])
		assert.Equal(t, formatDate(r.LatestDate), rec[8])
	}
}

func TestExportIdempotent(t *testing.T) {
	uc := newTestUseCase(nil, nil)
	ctx := context.Background()
	input := export.UserInput{Bucket: report.BucketMonth, Selections: []string{"2025-06"}}

	first, err := uc.UserCSV(ctx, input)
	require.NoError(t, err)
	second, err := uc.UserCSV(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, first.Data, second.Data)
	assert.Equal(t, first.Name, second.Name)
}

func TestUserCSV(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	file, err := uc.UserCSV(context.Background(), export.UserInput{
		Bucket:     report.BucketDay,
		Selections: []string{"2025-06-02"},
	})
	require.NoError(t, err)

	assert.Equal(t, "user_summary_day_2025-06-02.csv", file.Name)
	want := "User,Production,QC,Total,Prod_Eff,QC_Eff,Quality,Team_Group\n" +
		"alice,600,0,600,50,0,100,A\n"
	assert.Equal(t, want, string(file.Data))
}

func TestUserCSVWeeks(t *testing.T) {
	uc := newTestUseCase(nil, nil)
	w1, w2 := util.WeekLabel(day(2)), util.WeekLabel(day(9))

	file, err := uc.UserCSV(context.Background(), export.UserInput{
		Bucket:     report.BucketWeek,
		Selections: []string{w2, w1},
	})
	require.NoError(t, err)

	assert.Equal(t, "weekly_summary_"+w2+"_"+w1+".csv", file.Name)
	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"User", "Prod_" + w2, "Prod_" + w1, "Total_Prod", "QC_" + w2, "QC_" + w1,
		"Total_QC", "Total", "Prod_Eff", "QC_Eff", "Quality", "Team_Group",
	}, records[0])
	require.Len(t, records, 3)
	assert.Equal(t, []string{"alice", "0", "600", "600", "0", "0", "0", "600", "5", "0", "100", "A"}, records[1])
	assert.Equal(t, []string{"bob", "0", "0", "0", "1000.5", "0", "1000.5", "1000.5", "0", "5", "100", model.UnassignedTeam}, records[2])
}

func TestUserCSVSingleWeek(t *testing.T) {
	uc := newTestUseCase(nil, nil)
	w1 := util.WeekLabel(day(2))

	file, err := uc.UserCSV(context.Background(), export.UserInput{
		Bucket:     "Week",
		Selections: []string{w1},
	})
	require.NoError(t, err)

	assert.Equal(t, "user_summary_week_"+w1+".csv", file.Name)
	want := "User,Production,QC,Total,Prod_Eff,QC_Eff,Quality,Team_Group\n" +
		"alice,600,0,600,10,0,100,A\n"
	assert.Equal(t, want, string(file.Data))
}

func TestUserCSVMonthsFileName(t *testing.T) {
	out := report.UserPeriodOutput{Bucket: report.BucketMonth, Selections: []string{"2025-06", "2025-05"}}
	assert.Equal(t, "monthly_summary_2025-06_2025-05.csv", userFileName(out))

	out.Selections = out.Selections[:1]
	assert.Equal(t, "user_summary_month_2025-06.csv", userFileName(out))
}

func TestUserCSVEmptySelection(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	_, err := uc.UserCSV(context.Background(), export.UserInput{Bucket: report.BucketWeek})
	assert.ErrorIs(t, err, report.ErrEmptySelection)
}

func TestStore(t *testing.T) {
	storage := &fakeStorage{}
	producer := &fakeProducer{}
	uc := newTestUseCase(storage, producer)

	out, err := uc.Store(context.Background(), export.StoreInput{
		Kind:         export.KindPublications,
		Publications: export.PublicationInput{All: true},
	})
	require.NoError(t, err)

	assert.Equal(t, "fixed-id", out.ExportID)
	assert.Equal(t, "exports/fixed-id/publication_summary.csv", out.ObjectName)
	assert.Equal(t, "https://minio.local/dashboard-exports/exports/fixed-id/publication_summary.csv", out.URL)
	assert.Equal(t, day(10).Add(30*time.Minute), out.ExpiresAt)
	assert.Equal(t, int64(len(storage.body)), out.Size)
	assert.Equal(t, "dashboard-exports", storage.uploaded.BucketName)
	assert.Equal(t, export.ContentTypeCSV, storage.uploaded.ContentType)

	require.Len(t, producer.events, 1)
	assert.Equal(t, export.KindPublications, producer.events[0].Kind)
	assert.Equal(t, out.ObjectName, producer.events[0].ObjectName)
}

func TestStoreErrors(t *testing.T) {
	ctx := context.Background()
	valid := export.StoreInput{Kind: export.KindPublications, Publications: export.PublicationInput{All: true}}

	t.Run("storage disabled", func(t *testing.T) {
		_, err := newTestUseCase(nil, nil).Store(ctx, valid)
		assert.ErrorIs(t, err, export.ErrStorageDisabled)
	})

	t.Run("invalid kind", func(t *testing.T) {
		_, err := newTestUseCase(&fakeStorage{}, nil).Store(ctx, export.StoreInput{Kind: "grids"})
		assert.ErrorIs(t, err, export.ErrInvalidKind)
	})

	t.Run("upload failure", func(t *testing.T) {
		_, err := newTestUseCase(&fakeStorage{uploadErr: errors.New("bucket gone")}, nil).Store(ctx, valid)
		assert.ErrorIs(t, err, export.ErrUploadFailed)
	})

	t.Run("publish failure is ignored", func(t *testing.T) {
		producer := &fakeProducer{err: errors.New("broker down")}
		out, err := newTestUseCase(&fakeStorage{}, producer).Store(ctx, valid)
		require.NoError(t, err)
		assert.NotEmpty(t, out.URL)
		assert.Len(t, producer.events, 1)
	})
}

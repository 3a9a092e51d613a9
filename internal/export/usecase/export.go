package usecase

import (
	"context"

	"dashboard-srv/internal/export"
	"dashboard-srv/internal/report"
)

func (uc *implUseCase) DailyCSV(ctx context.Context) (export.File, error) {
	rows, err := uc.report.DailySummary(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.DailyCSV: DailySummary: %v", err)
		return export.File{}, err
	}

	data, err := encodeDaily(rows)
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.DailyCSV: encodeDaily: %v", err)
		return export.File{}, err
	}

	return export.File{
		Name:        dailyFileName,
		ContentType: export.ContentTypeCSV,
		Data:        data,
	}, nil
}

func (uc *implUseCase) PublicationCSV(ctx context.Context, input export.PublicationInput) (export.File, error) {
	rows, err := uc.report.SelectPublications(ctx, report.SelectPublicationsInput{
		All:  input.All,
		Date: input.Date,
	})
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.PublicationCSV: SelectPublications: %v", err)
		return export.File{}, err
	}

	data, err := encodePublications(rows)
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.PublicationCSV: encodePublications: %v", err)
		return export.File{}, err
	}

	return export.File{
		Name:        publicationFileName,
		ContentType: export.ContentTypeCSV,
		Data:        data,
	}, nil
}

func (uc *implUseCase) UserCSV(ctx context.Context, input export.UserInput) (export.File, error) {
	out, err := uc.report.UserPeriodSummary(ctx, report.UserPeriodInput{
		Bucket:     input.Bucket,
		Selections: input.Selections,
		Team:       input.Team,
		User:       input.User,
	})
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.UserCSV: UserPeriodSummary: %v", err)
		return export.File{}, err
	}

	data, err := encodeUsers(out)
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.UserCSV: encodeUsers: %v", err)
		return export.File{}, err
	}

	return export.File{
		Name:        userFileName(out),
		ContentType: export.ContentTypeCSV,
		Data:        data,
	}, nil
}

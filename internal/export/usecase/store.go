package usecase

import (
	"bytes"
	"context"
	"path"

	"dashboard-srv/internal/export"
	pkgMinio "dashboard-srv/pkg/minio"
)

func (uc *implUseCase) Store(ctx context.Context, input export.StoreInput) (export.StoreOutput, error) {
	if uc.storage == nil {
		return export.StoreOutput{}, export.ErrStorageDisabled
	}

	file, err := uc.render(ctx, input)
	if err != nil {
		return export.StoreOutput{}, err
	}

	id := uc.newID()
	objectName := path.Join(uc.config.Prefix, id, file.Name)
	size := int64(len(file.Data))

	_, err = uc.storage.UploadFile(ctx, &pkgMinio.UploadRequest{
		BucketName:   uc.config.Bucket,
		ObjectName:   objectName,
		OriginalName: file.Name,
		Reader:       bytes.NewReader(file.Data),
		Size:         size,
		ContentType:  file.ContentType,
		Metadata: map[string]string{
			"export_id": id,
			"kind":      input.Kind,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.Store: UploadFile %s: %v", objectName, err)
		return export.StoreOutput{}, export.ErrUploadFailed
	}

	presigned, err := uc.storage.GetPresignedDownloadURL(ctx, &pkgMinio.PresignedURLRequest{
		BucketName: uc.config.Bucket,
		ObjectName: objectName,
		Method:     pkgMinio.MethodGET,
		Expiry:     uc.config.URLExpiry,
	})
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.Store: GetPresignedDownloadURL %s: %v", objectName, err)
		return export.StoreOutput{}, export.ErrPresignFailed
	}

	uc.publishCompleted(ctx, export.Completed{
		ExportID:    id,
		Kind:        input.Kind,
		FileName:    file.Name,
		ObjectName:  objectName,
		Size:        size,
		CompletedAt: uc.now(),
	})

	uc.l.Infof(ctx, "export.usecase.Store: stored %s (%d bytes)", objectName, size)

	return export.StoreOutput{
		ExportID:   id,
		FileName:   file.Name,
		ObjectName: objectName,
		Size:       size,
		URL:        presigned.URL,
		ExpiresAt:  presigned.ExpiresAt,
	}, nil
}

func (uc *implUseCase) render(ctx context.Context, input export.StoreInput) (export.File, error) {
	switch input.Kind {
	case export.KindDaily:
		return uc.DailyCSV(ctx)
	case export.KindPublications:
		return uc.PublicationCSV(ctx, input.Publications)
	case export.KindUsers:
		return uc.UserCSV(ctx, input.Users)
	default:
		return export.File{}, export.ErrInvalidKind
	}
}

// publishCompleted never fails the export.
func (uc *implUseCase) publishCompleted(ctx context.Context, event export.Completed) {
	if uc.producer == nil {
		return
	}
	if err := uc.producer.PublishExportCompleted(ctx, event); err != nil {
		uc.l.Warnf(ctx, "export.usecase.publishCompleted: %v", err)
	}
}

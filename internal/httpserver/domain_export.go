package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"dashboard-srv/internal/export"
	exportHTTP "dashboard-srv/internal/export/delivery/http"
	exportProducer "dashboard-srv/internal/export/delivery/kafka/producer"
	exportUsecase "dashboard-srv/internal/export/usecase"
	"dashboard-srv/internal/middleware"
	"dashboard-srv/internal/scheduler"
)

func (srv *HTTPServer) setupExportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	var producer export.Producer
	if srv.kafkaProducer != nil {
		producer = exportProducer.New(srv.l, srv.kafkaProducer)
	}

	srv.exportUC = exportUsecase.New(srv.reportUC, srv.minioClient, producer, srv.l, exportUsecase.Config{
		Bucket:    srv.export.Bucket,
		Prefix:    srv.export.Prefix,
		URLExpiry: srv.export.URLExpiry,
	})

	handler := exportHTTP.New(srv.l, srv.exportUC)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Export domain registered (storage enabled: %t, events enabled: %t)",
		srv.minioClient != nil, producer != nil)
	return nil
}

func (srv *HTTPServer) setupScheduler(ctx context.Context) error {
	if srv.export.Spec == "" {
		return nil
	}

	s, err := scheduler.New(srv.l, srv.reportUC, srv.exportUC, srv.export.Spec)
	if err != nil {
		return err
	}
	srv.scheduler = s

	srv.l.Infof(ctx, "Scheduled exports registered: %s", srv.export.Spec)
	return nil
}

package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"dashboard-srv/internal/middleware"
	reportHTTP "dashboard-srv/internal/report/delivery/http"
	"dashboard-srv/internal/report/repository"
	reportRedis "dashboard-srv/internal/report/repository/redis"
	reportUsecase "dashboard-srv/internal/report/usecase"
)

func (srv *HTTPServer) setupReportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	var cache repository.CacheRepository
	if srv.redisClient != nil {
		cache = reportRedis.New(srv.redisClient, srv.cacheTTL, srv.l)
	}

	srv.reportUC = reportUsecase.New(srv.snapshot, cache, srv.l, reportUsecase.Config{Targets: srv.targets})

	handler := reportHTTP.New(srv.l, srv.reportUC)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Report domain registered (cache enabled: %t)", cache != nil)
	return nil
}

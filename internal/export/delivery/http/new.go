package http

import (
	"dashboard-srv/internal/export"
	"dashboard-srv/internal/middleware"
	"dashboard-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc export.UseCase
}

func New(l log.Logger, uc export.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

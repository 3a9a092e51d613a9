package http

import (
	"dashboard-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/exports")
	api.Use(mw.RequestID())
	{
		api.GET("/daily", h.DailyCSV)
		api.GET("/publications", h.PublicationCSV)
		api.GET("/users", h.UserCSV)
		api.POST("", h.Store)
	}
}

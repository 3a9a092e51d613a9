package http

import (
	"dashboard-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.RequestID())
	{
		api.GET("/overview", h.Overview)

		api.GET("/daily", h.DailySummary)
		api.GET("/daily/dates", h.AvailableDates)
		api.GET("/daily/metrics", h.DayMetrics)

		api.GET("/publications", h.SelectPublications)
		api.GET("/publications/dates", h.PublicationDates)

		api.GET("/users/buckets", h.AvailableBuckets)
		api.GET("/users/summary", h.UserPeriodSummary)
	}
}

package http

import (
	"dashboard-srv/internal/report"
	"dashboard-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Dashboard overview
// @Description Daily table, latest day metrics, latest publications and the latest day user summary
// @Tags Report
// @Produce json
// @Success 200 {object} overviewResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/overview [get]
func (h *handler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.Overview(ctx)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Overview: usecase Overview failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newOverviewResp(o))
}

// @Summary Daily production and QC points
// @Description Production and QC points per log date, newest first
// @Tags Daily
// @Produce json
// @Success 200 {array} dailyRowResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/daily [get]
func (h *handler) DailySummary(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.DailySummary(ctx)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.DailySummary: usecase DailySummary failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDailyResp(o))
}

// @Summary Daily date options
// @Description Distinct log dates, newest first
// @Tags Daily
// @Produce json
// @Success 200 {array} string
// @Router /api/v1/daily/dates [get]
func (h *handler) AvailableDates(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.AvailableDates(ctx)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.AvailableDates: usecase AvailableDates failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDatesResp(o))
}

// @Summary Metrics of one day
// @Description Points, users, targets, progress and hourly rate for a date, plus the trailing window
// @Tags Daily
// @Produce json
// @Param date query string false "Date as YYYY-MM-DD, defaults to the latest date"
// @Success 200 {object} dayMetricsResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/daily/metrics [get]
func (h *handler) DayMetrics(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDayMetricsRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.DayMetrics(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.DayMetrics: usecase DayMetrics failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDayMetricsResp(o))
}

// @Summary Publication summary
// @Description Publications on a date, backfilled with older ones up to five rows, or every publication
// @Tags Publication
// @Produce json
// @Param date query string false "YYYY-MM-DD or all, defaults to the latest date"
// @Success 200 {array} publicationResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/publications [get]
func (h *handler) SelectPublications(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSelectPublicationsRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.SelectPublications(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.SelectPublications: usecase SelectPublications failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPublicationsResp(o))
}

// @Summary Publication date options
// @Description Distinct publication latest dates, newest first
// @Tags Publication
// @Produce json
// @Success 200 {array} string
// @Router /api/v1/publications/dates [get]
func (h *handler) PublicationDates(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.PublicationDates(ctx)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.PublicationDates: usecase PublicationDates failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDatesResp(o))
}

// @Summary User summary period options
// @Description Distinct day, week or month labels, newest first
// @Tags User
// @Produce json
// @Param view query string false "day, week or month" default(day)
// @Success 200 {array} string
// @Failure 400 {object} response.Resp
// @Router /api/v1/users/buckets [get]
func (h *handler) AvailableBuckets(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processAvailableBucketsRequest(c)

	o, err := h.uc.AvailableBuckets(ctx, report.Bucket(req.View))
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.AvailableBuckets: usecase AvailableBuckets failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, o)
}

// @Summary User summary
// @Description Per-user points, efficiency and quality over the selected periods
// @Tags User
// @Produce json
// @Param view query string false "day, week or month" default(day)
// @Param selection query []string true "Period labels" collectionFormat(multi)
// @Param team query string false "Team group filter, All disables"
// @Param user query string false "User filter, All disables"
// @Success 200 {object} userPeriodResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/users/summary [get]
func (h *handler) UserPeriodSummary(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processUserPeriodRequest(c)

	o, err := h.uc.UserPeriodSummary(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.UserPeriodSummary: usecase UserPeriodSummary failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUserPeriodResp(o))
}

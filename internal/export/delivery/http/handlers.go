package http

import (
	"dashboard-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Download the daily summary
// @Description Daily Production/QC table as daily_summary.csv
// @Tags Export
// @Produce text/csv
// @Success 200 {file} file
// @Failure 500 {object} response.Resp
// @Router /api/v1/exports/daily [get]
func (h *handler) DailyCSV(c *gin.Context) {
	ctx := c.Request.Context()

	f, err := h.uc.DailyCSV(ctx)
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.DailyCSV: usecase DailyCSV failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Attachment(c, f.Name, f.ContentType, f.Data)
}

// @Summary Download the publication summary
// @Description Selected publications as publication_summary.csv
// @Tags Export
// @Produce text/csv
// @Param date query string false "YYYY-MM-DD, latest or all, defaults to the latest date"
// @Success 200 {file} file
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/exports/publications [get]
func (h *handler) PublicationCSV(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPublicationRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	f, err := h.uc.PublicationCSV(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.PublicationCSV: usecase PublicationCSV failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Attachment(c, f.Name, f.ContentType, f.Data)
}

// @Summary Download the user summary
// @Description User summary of the selected periods as CSV, one column pair per period for several weeks or months
// @Tags Export
// @Produce text/csv
// @Param view query string false "day, week or month" default(day)
// @Param selection query []string true "Period labels" collectionFormat(multi)
// @Param team query string false "Team group filter"
// @Param user query string false "User filter"
// @Success 200 {file} file
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/exports/users [get]
func (h *handler) UserCSV(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processUserRequest(c)

	f, err := h.uc.UserCSV(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.UserCSV: usecase UserCSV failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Attachment(c, f.Name, f.ContentType, f.Data)
}

// @Summary Store an export
// @Description Upload an export to object storage and return a presigned download URL
// @Tags Export
// @Accept json
// @Produce json
// @Param body body storeReq true "Export request"
// @Success 200 {object} storeResp
// @Failure 400 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/exports [post]
func (h *handler) Store(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStoreRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.Store(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.Store: usecase Store failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStoreResp(o))
}

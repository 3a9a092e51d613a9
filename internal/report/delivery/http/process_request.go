package http

import (
	"strings"
	"time"

	"dashboard-srv/pkg/util"

	"github.com/gin-gonic/gin"
)

const publicationsAll = "all"

func (h *handler) processDayMetricsRequest(c *gin.Context) (dayMetricsReq, error) {
	var req dayMetricsReq

	date, err := parseOptionalDate(c.Query("date"))
	if err != nil {
		h.l.Errorf(c.Request.Context(), "report.delivery.http.processDayMetricsRequest: parseOptionalDate failed: %v", err)
		return req, errInvalidDate
	}
	req.Date = date
	return req, nil
}

func (h *handler) processSelectPublicationsRequest(c *gin.Context) (selectPublicationsReq, error) {
	var req selectPublicationsReq

	raw := strings.TrimSpace(c.Query("date"))
	if strings.EqualFold(raw, publicationsAll) {
		req.All = true
		return req, nil
	}

	date, err := parseOptionalDate(raw)
	if err != nil {
		h.l.Errorf(c.Request.Context(), "report.delivery.http.processSelectPublicationsRequest: parseOptionalDate failed: %v", err)
		return req, errInvalidDate
	}
	req.Date = date
	return req, nil
}

func (h *handler) processAvailableBucketsRequest(c *gin.Context) availableBucketsReq {
	return availableBucketsReq{View: c.DefaultQuery("view", "day")}
}

func (h *handler) processUserPeriodRequest(c *gin.Context) userPeriodReq {
	return userPeriodReq{
		View:       c.DefaultQuery("view", "day"),
		Selections: c.QueryArray("selection"),
		Team:       c.Query("team"),
		User:       c.Query("user"),
	}
}

func parseOptionalDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	return util.StrToDate(raw)
}

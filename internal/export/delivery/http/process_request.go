package http

import (
	"strings"

	"dashboard-srv/pkg/util"

	"github.com/gin-gonic/gin"
)

const publicationsAll = "all"

func (h *handler) processPublicationRequest(c *gin.Context) (publicationReq, error) {
	req, err := parsePublicationDate(c.Query("date"))
	if err != nil {
		h.l.Errorf(c.Request.Context(), "export.delivery.http.processPublicationRequest: parsePublicationDate failed: %v", err)
		return req, errInvalidDate
	}
	return req, nil
}

func (h *handler) processUserRequest(c *gin.Context) userReq {
	return userReq{
		View:       c.DefaultQuery("view", "day"),
		Selections: c.QueryArray("selection"),
		Team:       c.Query("team"),
		User:       c.Query("user"),
	}
}

func (h *handler) processStoreRequest(c *gin.Context) (storeReq, error) {
	var req storeReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "export.delivery.http.processStoreRequest: ShouldBindJSON failed: %v", err)
		return req, err
	}
	if req.View == "" {
		req.View = "day"
	}

	pub, err := parsePublicationDate(req.Date)
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.processStoreRequest: parsePublicationDate failed: %v", err)
		return req, errInvalidDate
	}
	req.publication = pub

	return req, nil
}

// parsePublicationDate accepts "all", an empty value for the latest date,
// or a YYYY-MM-DD date.
func parsePublicationDate(raw string) (publicationReq, error) {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return publicationReq{}, nil
	case strings.EqualFold(raw, publicationsAll):
		return publicationReq{All: true}, nil
	}

	date, err := util.StrToDate(raw)
	if err != nil {
		return publicationReq{}, err
	}
	return publicationReq{Date: date}, nil
}

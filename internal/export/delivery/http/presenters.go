package http

import (
	"time"

	"dashboard-srv/internal/export"
	"dashboard-srv/internal/report"
	"dashboard-srv/pkg/response"
)

type publicationReq struct {
	All  bool
	Date time.Time
}

func (r publicationReq) toInput() export.PublicationInput {
	return export.PublicationInput{All: r.All, Date: r.Date}
}

type userReq struct {
	View       string
	Selections []string
	Team       string
	User       string
}

func (r userReq) toInput() export.UserInput {
	return export.UserInput{
		Bucket:     report.Bucket(r.View),
		Selections: r.Selections,
		Team:       r.Team,
		User:       r.User,
	}
}

type storeReq struct {
	Kind       string   `json:"kind" binding:"required"`
	View       string   `json:"view"`
	Selections []string `json:"selections"`
	Date       string   `json:"date"`
	Team       string   `json:"team"`
	User       string   `json:"user"`

	publication publicationReq
}

func (r storeReq) toInput() export.StoreInput {
	users := userReq{View: r.View, Selections: r.Selections, Team: r.Team, User: r.User}
	return export.StoreInput{
		Kind:         r.Kind,
		Publications: r.publication.toInput(),
		Users:        users.toInput(),
	}
}

type storeResp struct {
	ExportID   string            `json:"export_id"`
	FileName   string            `json:"file_name"`
	ObjectName string            `json:"object_name"`
	Size       int64             `json:"size"`
	URL        string            `json:"url"`
	ExpiresAt  response.DateTime `json:"expires_at" swaggertype:"string"`
}

func (h *handler) newStoreResp(o export.StoreOutput) storeResp {
	return storeResp{
		ExportID:   o.ExportID,
		FileName:   o.FileName,
		ObjectName: o.ObjectName,
		Size:       o.Size,
		URL:        o.URL,
		ExpiresAt:  response.DateTime(o.ExpiresAt),
	}
}

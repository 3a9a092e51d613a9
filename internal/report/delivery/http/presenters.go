package http

import (
	"time"

	"dashboard-srv/internal/report"
	"dashboard-srv/pkg/response"
	"dashboard-srv/pkg/util"
)

type dayMetricsReq struct {
	Date time.Time
}

func (r dayMetricsReq) toInput() report.DayMetricsInput {
	return report.DayMetricsInput{Date: r.Date}
}

type selectPublicationsReq struct {
	All  bool
	Date time.Time
}

func (r selectPublicationsReq) toInput() report.SelectPublicationsInput {
	return report.SelectPublicationsInput{All: r.All, Date: r.Date}
}

type availableBucketsReq struct {
	View string
}

type userPeriodReq struct {
	View       string
	Selections []string
	Team       string
	User       string
}

func (r userPeriodReq) toInput() report.UserPeriodInput {
	return report.UserPeriodInput{
		Bucket:     report.Bucket(r.View),
		Selections: r.Selections,
		Team:       r.Team,
		User:       r.User,
	}
}

type dailyRowResp struct {
	Date       response.Date `json:"date" swaggertype:"string" example:"2025-06-02"`
	Production float64       `json:"production"`
	QC         float64       `json:"qc"`
}

type activityMetricsResp struct {
	Points      float64 `json:"points"`
	Users       int     `json:"users"`
	Target      float64 `json:"target"`
	ProgressPct float64 `json:"progress_pct"`
	RatePerHour float64 `json:"rate_per_hour"`
}

type dayMetricsResp struct {
	Date       response.Date       `json:"date" swaggertype:"string" example:"2025-06-02"`
	Production activityMetricsResp `json:"production"`
	QC         activityMetricsResp `json:"qc"`
	Window     []dailyRowResp      `json:"window"`
}

type publicationResp struct {
	Publication   string        `json:"publication"`
	TotalGrids    int           `json:"total_grids"`
	Points        float64       `json:"points"`
	Output        float64       `json:"output"`
	ProdComp      int           `json:"prod_comp"`
	QCComp        int           `json:"qc_comp"`
	ProdIP        int           `json:"prod_ip"`
	QCIP          int           `json:"qc_ip"`
	LatestDate    response.Date `json:"latest_date" swaggertype:"string" example:"2025-06-02"`
	CompletionPct float64       `json:"completion_pct"`
}

type userRowResp struct {
	User               string    `json:"user"`
	Production         float64   `json:"production"`
	QC                 float64   `json:"qc"`
	Total              float64   `json:"total"`
	ProdEff            float64   `json:"prod_eff"`
	QCEff              float64   `json:"qc_eff"`
	Quality            float64   `json:"quality"`
	TeamGroup          string    `json:"team_group"`
	ProductionByBucket []float64 `json:"production_by_bucket,omitempty"`
	QCByBucket         []float64 `json:"qc_by_bucket,omitempty"`
}

type userPeriodResp struct {
	View       string        `json:"view"`
	Selections []string      `json:"selections"`
	Rows       []userRowResp `json:"rows"`
}

type overviewResp struct {
	Daily        []dailyRowResp    `json:"daily"`
	Metrics      dayMetricsResp    `json:"metrics"`
	Publications []publicationResp `json:"publications"`
	Users        userPeriodResp    `json:"users"`
}

func (h *handler) newDailyResp(rows []report.DailyRow) []dailyRowResp {
	resp := make([]dailyRowResp, len(rows))
	for i, r := range rows {
		resp[i] = dailyRowResp{
			Date:       response.Date(r.Date),
			Production: r.Production,
			QC:         r.QC,
		}
	}
	return resp
}

func (h *handler) newDatesResp(dates []time.Time) []string {
	resp := make([]string, len(dates))
	for i, d := range dates {
		resp[i] = util.DateToStr(d)
	}
	return resp
}

func newActivityMetricsResp(m report.ActivityMetrics) activityMetricsResp {
	return activityMetricsResp{
		Points:      m.Points,
		Users:       m.Users,
		Target:      m.Target,
		ProgressPct: m.ProgressPct,
		RatePerHour: m.RatePerHour,
	}
}

func (h *handler) newDayMetricsResp(o report.DayMetrics) dayMetricsResp {
	return dayMetricsResp{
		Date:       response.Date(o.Date),
		Production: newActivityMetricsResp(o.Production),
		QC:         newActivityMetricsResp(o.QC),
		Window:     h.newDailyResp(o.Window),
	}
}

func (h *handler) newPublicationsResp(rows []report.PublicationRow) []publicationResp {
	resp := make([]publicationResp, len(rows))
	for i, r := range rows {
		resp[i] = publicationResp{
			Publication:   r.Publication,
			TotalGrids:    r.TotalGrids,
			Points:        r.Points,
			Output:        r.Output,
			ProdComp:      r.ProdComp,
			QCComp:        r.QCComp,
			ProdIP:        r.ProdIP,
			QCIP:          r.QCIP,
			LatestDate:    response.Date(r.LatestDate),
			CompletionPct: r.CompletionPct,
		}
	}
	return resp
}

func (h *handler) newUserPeriodResp(o report.UserPeriodOutput) userPeriodResp {
	resp := userPeriodResp{
		View:       string(o.Bucket),
		Selections: o.Selections,
		Rows:       make([]userRowResp, len(o.Rows)),
	}
	multi := o.MultiBucket()
	for i, r := range o.Rows {
		row := userRowResp{
			User:       r.User,
			Production: r.Production,
			QC:         r.QC,
			Total:      r.Total,
			ProdEff:    r.ProdEff,
			QCEff:      r.QCEff,
			Quality:    r.Quality,
			TeamGroup:  r.TeamGroup,
		}
		if multi {
			row.ProductionByBucket = r.ProductionByBucket
			row.QCByBucket = r.QCByBucket
		}
		resp.Rows[i] = row
	}
	return resp
}

func (h *handler) newOverviewResp(o report.OverviewOutput) overviewResp {
	return overviewResp{
		Daily:        h.newDailyResp(o.Daily),
		Metrics:      h.newDayMetricsResp(o.Metrics),
		Publications: h.newPublicationsResp(o.Publications),
		Users:        h.newUserPeriodResp(o.Users),
	}
}

package usecase

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"dashboard-srv/internal/report"
	"dashboard-srv/pkg/util"
)

var dailyHeader = []string{"Date", "Production", "QC"}

var publicationHeader = []string{
	"Publication", "Total_Grids", "Points", "Output", "Prod_Comp",
	"QC_Comp", "Prod_IP", "QC_IP", "Latest_Date", "%_Completion",
}

var userHeader = []string{
	"User", "Production", "QC", "Total", "Prod_Eff", "QC_Eff", "Quality", "Team_Group",
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return util.DateToStr(t)
}

func writeCSV(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeDaily(rows []report.DailyRow) ([]byte, error) {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, dailyHeader)
	for _, r := range rows {
		records = append(records, []string{
			formatDate(r.Date),
			formatFloat(r.Production),
			formatFloat(r.QC),
		})
	}
	return writeCSV(records)
}

func encodePublications(rows []report.PublicationRow) ([]byte, error) {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, publicationHeader)
	for _, r := range rows {
		records = append(records, []string{
			r.Publication,
			strconv.Itoa(r.TotalGrids),
			formatFloat(r.Points),
			formatFloat(r.Output),
			strconv.Itoa(r.ProdComp),
			strconv.Itoa(r.QCComp),
			strconv.Itoa(r.ProdIP),
			strconv.Itoa(r.QCIP),
			formatDate(r.LatestDate),
			formatFloat(r.CompletionPct),
		})
	}
	return writeCSV(records)
}

func encodeUsers(out report.UserPeriodOutput) ([]byte, error) {
	if out.MultiBucket() {
		return encodeUsersByBucket(out)
	}

	records := make([][]string, 0, len(out.Rows)+1)
	records = append(records, userHeader)
	for _, r := range out.Rows {
		records = append(records, []string{
			r.User,
			formatFloat(r.Production),
			formatFloat(r.QC),
			formatFloat(r.Total),
			formatFloat(r.ProdEff),
			formatFloat(r.QCEff),
			formatFloat(r.Quality),
			r.TeamGroup,
		})
	}
	return writeCSV(records)
}

// encodeUsersByBucket writes one Prod_ and QC_ column per selected bucket.
func encodeUsersByBucket(out report.UserPeriodOutput) ([]byte, error) {
	header := []string{"User"}
	for _, s := range out.Selections {
		header = append(header, "Prod_"+s)
	}
	header = append(header, "Total_Prod")
	for _, s := range out.Selections {
		header = append(header, "QC_"+s)
	}
	header = append(header, "Total_QC", "Total", "Prod_Eff", "QC_Eff", "Quality", "Team_Group")

	records := make([][]string, 0, len(out.Rows)+1)
	records = append(records, header)
	for _, r := range out.Rows {
		record := make([]string, 0, len(header))
		record = append(record, r.User)
		for _, v := range r.ProductionByBucket {
			record = append(record, formatFloat(v))
		}
		record = append(record, formatFloat(r.Production))
		for _, v := range r.QCByBucket {
			record = append(record, formatFloat(v))
		}
		record = append(record,
			formatFloat(r.QC),
			formatFloat(r.Total),
			formatFloat(r.ProdEff),
			formatFloat(r.QCEff),
			formatFloat(r.Quality),
			r.TeamGroup,
		)
		records = append(records, record)
	}
	return writeCSV(records)
}

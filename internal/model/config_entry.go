package model

// QCAcceptanceAccepted marks a grid accepted by QC.
const QCAcceptanceAccepted = "Accepted"

// ConfigEntry is the status row of one grid within a publication.
type ConfigEntry struct {
	Publication    string
	Grid           string
	Points         float64
	GridPoint      float64
	LatestStatus   string
	LatestActivity string
	QCAcceptance   string
}

// IsProductionComplete reports whether the grid is past production: either
// completed, or in progress with QC as its latest activity.
func (c ConfigEntry) IsProductionComplete() bool {
	if c.LatestStatus == StatusComp {
		return true
	}
	return c.LatestStatus == StatusIP && c.LatestActivity == ActivityQC
}

// IsQCComplete reports whether QC accepted the grid.
func (c ConfigEntry) IsQCComplete() bool {
	return c.QCAcceptance == QCAcceptanceAccepted
}

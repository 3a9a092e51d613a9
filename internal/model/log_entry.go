package model

import "time"

// Activity values recognised by the aggregators. Any other value is kept but ignored.
const (
	ActivityProduction = "Production"
	ActivityQC         = "QC"
)

// Work status values.
const (
	StatusComp = "Comp"
	StatusIP   = "IP"
)

// LogEntry is one logged activity event.
type LogEntry struct {
	User     string
	Activity string
	// Date is the raw day-month string as entered, e.g. "05-Jun".
	Date   string
	Points float64
	Status string
	Error  float64
	// FeedbackTo is the user whose work this QC row reviews. Empty when not set.
	FeedbackTo  string
	Publication string
	Grid        string
	GridPoint   float64

	// Derived by normalization
	LogDate time.Time
	Week    string
	Month   string
}

// IsProductionOrQC reports whether the entry counts toward production/QC totals.
func (e LogEntry) IsProductionOrQC() bool {
	return e.Activity == ActivityProduction || e.Activity == ActivityQC
}

// IsCompOrIP reports whether the entry has a Comp or IP status.
func (e LogEntry) IsCompOrIP() bool {
	return e.Status == StatusComp || e.Status == StatusIP
}

// HasFeedback reports whether the entry carries QC feedback for another user.
func (e LogEntry) HasFeedback() bool {
	return e.FeedbackTo != ""
}

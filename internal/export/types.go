package export

import (
	"time"

	"dashboard-srv/internal/report"
)

// Export kinds.
const (
	KindDaily        = "daily"
	KindPublications = "publications"
	KindUsers        = "users"
)

const ContentTypeCSV = "text/csv; charset=utf-8"

// File is a rendered export.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

type PublicationInput struct {
	All  bool
	Date time.Time
}

type UserInput struct {
	Bucket     report.Bucket
	Selections []string
	Team       string
	User       string
}

type StoreInput struct {
	Kind         string
	Publications PublicationInput
	Users        UserInput
}

type StoreOutput struct {
	ExportID   string
	FileName   string
	ObjectName string
	Size       int64
	URL        string
	ExpiresAt  time.Time
}

// Completed describes a stored export. It is published as the
// export.completed event.
type Completed struct {
	ExportID    string
	Kind        string
	FileName    string
	ObjectName  string
	Size        int64
	CompletedAt time.Time
}

package snapshot

// Table labels used in load errors and logs.
const (
	TableLog    = "log"
	TableConfig = "config"
	TableTeam   = "team"
)

// Sources locates the three input tables. Each location is a file path or an
// object key depending on the repository backend. The extension selects the
// decoder: .xlsx is read as a workbook, anything else as CSV.
type Sources struct {
	Log    string
	Config string
	Team   string
}

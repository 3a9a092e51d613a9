package repository

// SummaryKey identifies a computed summary. Fingerprint ties it to one
// snapshot so a reload never serves stale results.
type SummaryKey struct {
	Fingerprint string
	Kind        string
	Params      []string
}

package model

import "time"

// Snapshot is the immutable set of normalized source tables loaded at start-up.
// The slices returned by its accessors are shared and must not be modified.
type Snapshot struct {
	logs        []LogEntry
	configs     []ConfigEntry
	team        []TeamMember
	teamIndex   map[string]string
	loadedAt    time.Time
	fingerprint string
}

// NewSnapshot copies the given tables into a new Snapshot. When a user is
// listed more than once in the roster the first row wins.
func NewSnapshot(logs []LogEntry, configs []ConfigEntry, team []TeamMember, loadedAt time.Time, fingerprint string) *Snapshot {
	s := &Snapshot{
		logs:        append([]LogEntry(nil), logs...),
		configs:     append([]ConfigEntry(nil), configs...),
		team:        append([]TeamMember(nil), team...),
		teamIndex:   make(map[string]string, len(team)),
		loadedAt:    loadedAt,
		fingerprint: fingerprint,
	}
	for _, m := range team {
		if _, ok := s.teamIndex[m.User]; !ok {
			s.teamIndex[m.User] = m.TeamGroup
		}
	}
	return s
}

func (s *Snapshot) Logs() []LogEntry       { return s.logs }
func (s *Snapshot) Configs() []ConfigEntry { return s.configs }
func (s *Snapshot) Team() []TeamMember     { return s.team }
func (s *Snapshot) LoadedAt() time.Time    { return s.loadedAt }

// Fingerprint identifies the source content the snapshot was built from.
func (s *Snapshot) Fingerprint() string { return s.fingerprint }

// TeamGroup returns the user's team group, or UnassignedTeam.
func (s *Snapshot) TeamGroup(user string) string {
	if group, ok := s.teamIndex[user]; ok {
		return group
	}
	return UnassignedTeam
}

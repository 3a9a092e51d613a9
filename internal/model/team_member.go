package model

// UnassignedTeam is the team group of users missing from the roster.
const UnassignedTeam = "Unassigned"

// TeamMember maps a user to a team group.
type TeamMember struct {
	User      string
	TeamGroup string
}

package domain

import "time"

// HackathonRegistration is one team entry. The leader is the authenticated
// user who submitted the form; at most one registration exists per leader.
type HackathonRegistration struct {
	ID            string
	TeamName      string
	LeaderID      string
	LeaderName    string
	LeaderEmail   string
	LeaderPhone   string
	LeaderCollege string
	LeaderYear    string
	CreatedAt     time.Time
}

type HackathonMember struct {
	ID             string
	RegistrationID string
	Name           string
	Email          string
	Phone          string
}

// HackathonTeam is a registration joined with its members, as served to the
// admin dashboard and the CSV export.
type HackathonTeam struct {
	HackathonRegistration

	Members []HackathonMember
}

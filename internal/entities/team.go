// Package entities contains core business entities.
package entities

// TeamStatus enumerates team lifecycle states.
type TeamStatus string

const (
	// TeamOpen marks a team as recruiting.
	TeamOpen TeamStatus = "open"
	// TeamClosed marks a team as closed. No operation sets it; the field is
	// driven by out-of-scope admin tooling.
	TeamClosed TeamStatus = "closed"
)

// Team aggregates a leader and members recruiting for roles.
type Team struct {
	ID         int64
	Name       string
	Leader     User
	Tech       []string
	LookingFor []string
	MaxMembers int
	Status     TeamStatus
	Members    []User
}

// NewTeam carries the input for team creation. The leader becomes the sole
// initial member.
type NewTeam struct {
	LeaderID   int64
	Name       string
	Tech       []string
	LookingFor []string
	MaxMembers int
}

// TeamDetail is a Team together with its pending and decided applications
// and invitations.
type TeamDetail struct {
	Team
	Applications []Application
	Invitations  []Invitation
}

// IsLedBy reports whether userID holds leadership authority over the team.
func (t Team) IsLedBy(userID int64) bool {
	return t.Leader.ID == userID
}

// HasRewardMember reports whether the leader or any member carries the
// reward flag. Drives listing priority.
func (t Team) HasRewardMember() bool {
	if t.Leader.HasReward {
		return true
	}
	for _, m := range t.Members {
		if m.HasReward {
			return true
		}
	}
	return false
}

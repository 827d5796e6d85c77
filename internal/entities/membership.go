// Package entities contains core business entities.
package entities

import "time"

// MembershipStatus enumerates application/invitation lifecycle states.
type MembershipStatus string

const (
	// StatusPending is the initial state.
	StatusPending MembershipStatus = "pending"
	// StatusAccepted is a terminal state; acceptance adds the subject to the roster.
	StatusAccepted MembershipStatus = "accepted"
	// StatusRejected is a terminal state with no roster effect.
	StatusRejected MembershipStatus = "rejected"
)

// Application is a user's request to join a team. The team leader decides it.
type Application struct {
	ID        int64
	TeamID    int64
	User      User
	Status    MembershipStatus
	CreatedAt time.Time
}

// Invitation is a leader's offer to a user. The invited user decides it.
type Invitation struct {
	ID        int64
	TeamID    int64
	User      User
	Status    MembershipStatus
	CreatedAt time.Time
}

// MembershipRef is a compact projection for "my applications/invitations"
// listings.
type MembershipRef struct {
	ID     int64
	TeamID int64
	Status MembershipStatus
}

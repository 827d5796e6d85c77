// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrApplicationNotFound signals missing application.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrInvitationNotFound signals a missing invitation or one addressed to another user.
	ErrInvitationNotFound = errors.New("invitation not found")
	// ErrForbidden signals the actor lacks leadership authority over the team.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"teamup-service/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user-related operations. CreateUser exists as store
// plumbing for seeds and tests; registration itself lives in the external
// user directory.
type UserInterface interface {
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	GetUser(ctx context.Context, userID int64) (*entities.User, error)
	UpdateProfile(ctx context.Context, userID int64, profile entities.Profile) (*entities.User, error)
	FilterUsers(ctx context.Context, filter entities.ApplicantFilter) ([]entities.User, error)
}

// TeamInterface exposes team-related operations.
type TeamInterface interface {
	CreateTeam(ctx context.Context, team entities.NewTeam) (*entities.Team, error)
	GetTeam(ctx context.Context, teamID int64) (*entities.Team, error)
	GetTeamDetail(ctx context.Context, teamID int64) (*entities.TeamDetail, error)
	ListTeams(ctx context.Context) ([]entities.Team, error)
}

// ApplicationInterface exposes the application side of the membership
// lifecycle. Accept/Reject run the full transition atomically and enforce
// leader authority for the given actor.
type ApplicationInterface interface {
	CreateApplication(ctx context.Context, teamID, userID int64) (*entities.Application, error)
	AcceptApplication(ctx context.Context, applicationID, actorID int64) (*entities.Application, error)
	RejectApplication(ctx context.Context, applicationID, actorID int64) (*entities.Application, error)
	ApplicationsByUser(ctx context.Context, userID int64) ([]entities.MembershipRef, error)
}

// InvitationInterface exposes the invitation side of the membership
// lifecycle. Accept/Reject scope the lookup to the acting user: a foreign
// invitation reads as not found.
type InvitationInterface interface {
	CreateInvitation(ctx context.Context, teamID, userID, actorID int64) (*entities.Invitation, error)
	AcceptInvitation(ctx context.Context, invitationID, actorID int64) (*entities.Invitation, error)
	RejectInvitation(ctx context.Context, invitationID, actorID int64) (*entities.Invitation, error)
	InvitationsByUser(ctx context.Context, userID int64) ([]entities.MembershipRef, error)
}

package usecase

import (
	"context"

	"teamup-service/internal/entities"
)

// TeamUsecaseInterface abstracts team-related operations for delivery layer.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, team entities.NewTeam) (*entities.Team, error)
	ListTeams(ctx context.Context) ([]entities.Team, error)
	TeamDetail(ctx context.Context, teamID int64) (*entities.TeamDetail, error)
}

// MembershipUsecaseInterface abstracts the application/invitation lifecycle.
// The actor id is explicit on every call; no ambient session state.
type MembershipUsecaseInterface interface {
	Apply(ctx context.Context, actorID, teamID int64) (*entities.Application, error)
	Invite(ctx context.Context, actorID, teamID, userID int64) (*entities.Invitation, error)
	AcceptInvitation(ctx context.Context, actorID, invitationID int64) (*entities.Invitation, error)
	RejectInvitation(ctx context.Context, actorID, invitationID int64) (*entities.Invitation, error)
	AcceptApplication(ctx context.Context, actorID, applicationID int64) (*entities.Application, error)
	RejectApplication(ctx context.Context, actorID, applicationID int64) (*entities.Application, error)
	MyInvitations(ctx context.Context, actorID int64) ([]entities.MembershipRef, error)
	MyApplications(ctx context.Context, actorID int64) ([]entities.MembershipRef, error)
}

// UserUsecaseInterface abstracts user-related operations.
type UserUsecaseInterface interface {
	UpdateProfile(ctx context.Context, actorID int64, profile entities.Profile) (*entities.User, error)
	FilterApplicants(ctx context.Context, query entities.ApplicantQuery) ([]entities.User, error)
}

// Package domain contains application Usecases orchestrating domain logic by membership.
package domain

import (
	"context"
	"fmt"

	"teamup-service/internal/entities"
)

// Apply files a pending application from the actor to a team.
func (u *Usecase) Apply(ctx context.Context, actorID, teamID int64) (*entities.Application, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == 0 {
		return nil, fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}
	res, err := u.repo.CreateApplication(ctx, teamID, actorID)
	if err != nil {
		return nil, err
	}
	u.log.Infow("applied to team", "team_id", teamID, "user_id", actorID)
	return res, nil
}

// Invite files a pending invitation to a user. The actor must lead the team;
// the invited user decides the outcome later.
func (u *Usecase) Invite(ctx context.Context, actorID, teamID, userID int64) (*entities.Invitation, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == 0 || userID == 0 {
		return nil, fmt.Errorf("%w: team_id and user_id are required", entities.ErrInvalidArgument)
	}
	res, err := u.repo.CreateInvitation(ctx, teamID, userID, actorID)
	if err != nil {
		return nil, err
	}
	u.log.Infow("user invited", "team_id", teamID, "user_id", userID, "actor_id", actorID)
	return res, nil
}

// AcceptInvitation joins the actor to the inviting team. An invitation
// addressed to someone else reads as not found, never forbidden.
func (u *Usecase) AcceptInvitation(ctx context.Context, actorID, invitationID int64) (*entities.Invitation, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if invitationID == 0 {
		return nil, fmt.Errorf("%w: invitation_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.AcceptInvitation(ctx, invitationID, actorID)
}

// RejectInvitation declines an invitation with no roster effect.
func (u *Usecase) RejectInvitation(ctx context.Context, actorID, invitationID int64) (*entities.Invitation, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if invitationID == 0 {
		return nil, fmt.Errorf("%w: invitation_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.RejectInvitation(ctx, invitationID, actorID)
}

// AcceptApplication joins the applicant to the team. Leader authority is
// enforced for the actor; violations surface as forbidden.
func (u *Usecase) AcceptApplication(ctx context.Context, actorID, applicationID int64) (*entities.Application, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if applicationID == 0 {
		return nil, fmt.Errorf("%w: application_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.AcceptApplication(ctx, applicationID, actorID)
}

// RejectApplication declines an application with no roster effect.
func (u *Usecase) RejectApplication(ctx context.Context, actorID, applicationID int64) (*entities.Application, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if applicationID == 0 {
		return nil, fmt.Errorf("%w: application_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.RejectApplication(ctx, applicationID, actorID)
}

// MyInvitations lists invitations addressed to the actor.
func (u *Usecase) MyInvitations(ctx context.Context, actorID int64) ([]entities.MembershipRef, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.InvitationsByUser(ctx, actorID)
}

// MyApplications lists applications filed by the actor.
func (u *Usecase) MyApplications(ctx context.Context, actorID int64) ([]entities.MembershipRef, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ApplicationsByUser(ctx, actorID)
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"teamup-service/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertInvitationQuery = `
INSERT INTO invitations(team_id, user_id, status)
VALUES ($1,$2,'pending')
RETURNING id, created_at`

	selectTeamLeaderQuery = `SELECT leader_id FROM teams WHERE id=$1`

	// Scoped to the acting user: a foreign invitation reads as not found.
	selectInvitationForUpdateQuery = `
SELECT id, team_id, status, created_at
FROM invitations
WHERE id=$1 AND user_id=$2
FOR UPDATE`

	updateInvitationStatusQuery = `UPDATE invitations SET status=$2 WHERE id=$1`

	invitationsByUserQuery = `SELECT id, team_id, status FROM invitations WHERE user_id=$1 ORDER BY id`
)

// CreateInvitation files a pending invitation from the team leader to
// userID. Only the leader may invite.
func (p *Postgres) CreateInvitation(ctx context.Context, teamID, userID, actorID int64) (*entities.Invitation, error) {
	var leaderID int64
	if err := p.db.QueryRow(ctx, selectTeamLeaderQuery, teamID).Scan(&leaderID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("team lookup: %w", err)
	}
	if leaderID != actorID {
		return nil, entities.ErrForbidden
	}

	invitee, err := p.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	inv := entities.Invitation{TeamID: teamID, User: *invitee, Status: entities.StatusPending}
	if err := p.db.QueryRow(ctx, insertInvitationQuery, teamID, userID).Scan(&inv.ID, &inv.CreatedAt); err != nil {
		p.log.Errorw("failed to insert invitation", "error", err, "team_id", teamID, "user_id", userID)
		return nil, fmt.Errorf("insert invitation: %w", err)
	}

	p.log.Infow("invitation created", "invitation_id", inv.ID, "team_id", teamID, "user_id", userID)
	return &inv, nil
}

// AcceptInvitation adds the acting user to the roster and marks the
// invitation accepted, atomically. The invited user decides, not the leader.
func (p *Postgres) AcceptInvitation(ctx context.Context, invitationID, actorID int64) (*entities.Invitation, error) {
	return p.decideInvitation(ctx, invitationID, actorID, entities.StatusAccepted)
}

// RejectInvitation marks the invitation rejected with no roster effect.
func (p *Postgres) RejectInvitation(ctx context.Context, invitationID, actorID int64) (*entities.Invitation, error) {
	return p.decideInvitation(ctx, invitationID, actorID, entities.StatusRejected)
}

func (p *Postgres) decideInvitation(ctx context.Context, invitationID, actorID int64, status entities.MembershipStatus) (*entities.Invitation, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var inv entities.Invitation
	if err := tx.QueryRow(ctx, selectInvitationForUpdateQuery, invitationID, actorID).Scan(
		&inv.ID, &inv.TeamID, &inv.Status, &inv.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("invitation lookup: %w", err)
	}

	if status == entities.StatusAccepted {
		if _, err := tx.Exec(ctx, insertMemberQuery, inv.TeamID, actorID); err != nil {
			return nil, fmt.Errorf("insert member: %w", err)
		}
	}
	if _, err := tx.Exec(ctx, updateInvitationStatusQuery, invitationID, status); err != nil {
		return nil, fmt.Errorf("update invitation status: %w", err)
	}

	invitee, err := scanUser(tx.QueryRow(ctx, selectUserQuery, actorID))
	if err != nil {
		return nil, fmt.Errorf("invitee lookup: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	inv.User = *invitee
	inv.Status = status
	p.log.Infow("invitation decided", "invitation_id", invitationID, "status", status, "actor_id", actorID)
	return &inv, nil
}

// InvitationsByUser lists the user's invitations as compact refs.
func (p *Postgres) InvitationsByUser(ctx context.Context, userID int64) ([]entities.MembershipRef, error) {
	return p.membershipRefs(ctx, invitationsByUserQuery, userID)
}

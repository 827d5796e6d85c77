package postgres

import (
	"context"
	"errors"
	"fmt"

	"teamup-service/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertApplicationQuery = `
INSERT INTO applications(team_id, user_id, status)
VALUES ($1,$2,'pending')
RETURNING id, created_at`

	selectApplicationForUpdateQuery = `
SELECT a.id, a.team_id, a.user_id, a.status, a.created_at, t.leader_id
FROM applications a JOIN teams t ON t.id = a.team_id
WHERE a.id=$1
FOR UPDATE OF a, t`

	updateApplicationStatusQuery = `UPDATE applications SET status=$2 WHERE id=$1`

	applicationsByUserQuery = `SELECT id, team_id, status FROM applications WHERE user_id=$1 ORDER BY id`
)

// CreateApplication files a pending application from userID to the team.
// Duplicate applications are allowed, as in the original workflow.
func (p *Postgres) CreateApplication(ctx context.Context, teamID, userID int64) (*entities.Application, error) {
	var exists int64
	if err := p.db.QueryRow(ctx, `SELECT id FROM teams WHERE id=$1`, teamID).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("team lookup: %w", err)
	}

	applicant, err := p.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	app := entities.Application{TeamID: teamID, User: *applicant, Status: entities.StatusPending}
	if err := p.db.QueryRow(ctx, insertApplicationQuery, teamID, userID).Scan(&app.ID, &app.CreatedAt); err != nil {
		p.log.Errorw("failed to insert application", "error", err, "team_id", teamID, "user_id", userID)
		return nil, fmt.Errorf("insert application: %w", err)
	}

	p.log.Infow("application created", "application_id", app.ID, "team_id", teamID, "user_id", userID)
	return &app, nil
}

// AcceptApplication adds the applicant to the roster and marks the
// application accepted, atomically. Only the team leader may accept.
func (p *Postgres) AcceptApplication(ctx context.Context, applicationID, actorID int64) (*entities.Application, error) {
	return p.decideApplication(ctx, applicationID, actorID, entities.StatusAccepted)
}

// RejectApplication marks the application rejected with no roster effect.
// Only the team leader may reject.
func (p *Postgres) RejectApplication(ctx context.Context, applicationID, actorID int64) (*entities.Application, error) {
	return p.decideApplication(ctx, applicationID, actorID, entities.StatusRejected)
}

func (p *Postgres) decideApplication(ctx context.Context, applicationID, actorID int64, status entities.MembershipStatus) (*entities.Application, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var (
		app         entities.Application
		applicantID int64
		leaderID    int64
	)
	if err := tx.QueryRow(ctx, selectApplicationForUpdateQuery, applicationID).Scan(
		&app.ID, &app.TeamID, &applicantID, &app.Status, &app.CreatedAt, &leaderID,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("application lookup: %w", err)
	}

	if leaderID != actorID {
		return nil, entities.ErrForbidden
	}

	if status == entities.StatusAccepted {
		if _, err := tx.Exec(ctx, insertMemberQuery, app.TeamID, applicantID); err != nil {
			return nil, fmt.Errorf("insert member: %w", err)
		}
	}
	if _, err := tx.Exec(ctx, updateApplicationStatusQuery, applicationID, status); err != nil {
		return nil, fmt.Errorf("update application status: %w", err)
	}

	applicant, err := scanUser(tx.QueryRow(ctx, selectUserQuery, applicantID))
	if err != nil {
		return nil, fmt.Errorf("applicant lookup: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	app.User = *applicant
	app.Status = status
	p.log.Infow("application decided", "application_id", applicationID, "status", status, "actor_id", actorID)
	return &app, nil
}

// ApplicationsByUser lists the user's applications as compact refs.
func (p *Postgres) ApplicationsByUser(ctx context.Context, userID int64) ([]entities.MembershipRef, error) {
	return p.membershipRefs(ctx, applicationsByUserQuery, userID)
}

func (p *Postgres) membershipRefs(ctx context.Context, query string, userID int64) ([]entities.MembershipRef, error) {
	rows, err := p.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("membership refs: %w", err)
	}
	defer rows.Close()

	refs := make([]entities.MembershipRef, 0)
	for rows.Next() {
		var ref entities.MembershipRef
		if err := rows.Scan(&ref.ID, &ref.TeamID, &ref.Status); err != nil {
			return nil, fmt.Errorf("scan membership ref: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate membership refs: %w", err)
	}

	return refs, nil
}

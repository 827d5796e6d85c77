package postgres

import (
	"context"
	"errors"
	"fmt"

	"teamup-service/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertTeamQuery = `
INSERT INTO teams(name, leader_id, tech, looking_for, max_members, status)
VALUES ($1,$2,$3,$4,$5,'open')
RETURNING id`

	insertMemberQuery = `INSERT INTO team_members(team_id, user_id) VALUES ($1,$2) ON CONFLICT DO NOTHING`

	selectTeamQuery = `
SELECT id, name, leader_id, tech, looking_for, max_members, status
FROM teams WHERE id=$1`

	selectAllTeamsQuery = `
SELECT id, name, leader_id, tech, looking_for, max_members, status
FROM teams ORDER BY id`

	selectMembersQuery = `
SELECT ` + prefixedUserColumns + `
FROM team_members m JOIN users u ON u.id = m.user_id
WHERE m.team_id=$1
ORDER BY u.id`

	selectAllMembersQuery = `
SELECT m.team_id, ` + prefixedUserColumns + `
FROM team_members m JOIN users u ON u.id = m.user_id
ORDER BY u.id`

	selectTeamApplicationsQuery = `
SELECT a.id, a.team_id, a.status, a.created_at, ` + prefixedUserColumns + `
FROM applications a JOIN users u ON u.id = a.user_id
WHERE a.team_id=$1
ORDER BY a.id`

	selectTeamInvitationsQuery = `
SELECT i.id, i.team_id, i.status, i.created_at, ` + prefixedUserColumns + `
FROM invitations i JOIN users u ON u.id = i.user_id
WHERE i.team_id=$1
ORDER BY i.id`

	prefixedUserColumns = `u.id, u.name, u.skills, u.keywords, u.main_role, u.sub_role, u.rating, u.participation, u.is_leader, u.has_reward`
)

// CreateTeam inserts a team with the leader as its only member.
func (p *Postgres) CreateTeam(ctx context.Context, team entities.NewTeam) (*entities.Team, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := scanUser(tx.QueryRow(ctx, selectUserQuery, team.LeaderID)); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("leader lookup: %w", err)
	}

	var teamID int64
	if err := tx.QueryRow(ctx, insertTeamQuery,
		team.Name, team.LeaderID, team.Tech, team.LookingFor, team.MaxMembers,
	).Scan(&teamID); err != nil {
		p.log.Errorw("failed to insert team", "error", err)
		return nil, fmt.Errorf("insert team: %w", err)
	}

	if _, err := tx.Exec(ctx, insertMemberQuery, teamID, team.LeaderID); err != nil {
		return nil, fmt.Errorf("insert leader membership: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("team created", "team_id", teamID, "leader_id", team.LeaderID)
	return p.GetTeam(ctx, teamID)
}

// GetTeam fetches a team with leader and members.
func (p *Postgres) GetTeam(ctx context.Context, teamID int64) (*entities.Team, error) {
	var (
		t        entities.Team
		leaderID int64
	)
	if err := p.db.QueryRow(ctx, selectTeamQuery, teamID).Scan(
		&t.ID, &t.Name, &leaderID, &t.Tech, &t.LookingFor, &t.MaxMembers, &t.Status,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}

	leader, err := p.GetUser(ctx, leaderID)
	if err != nil {
		return nil, fmt.Errorf("get team leader: %w", err)
	}
	t.Leader = *leader

	rows, err := p.db.Query(ctx, selectMembersQuery, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan members: %w", err)
		}
		members = append(members, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}
	t.Members = members

	return &t, nil
}

// ListTeams returns all teams with leaders and members in id order. Ordering
// by reward priority happens in the usecase layer.
func (p *Postgres) ListTeams(ctx context.Context) ([]entities.Team, error) {
	rows, err := p.db.Query(ctx, selectAllTeamsQuery)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	leaderIDs := make(map[int64]int64) // team id -> leader id
	for rows.Next() {
		var (
			t        entities.Team
			leaderID int64
		)
		if err := rows.Scan(&t.ID, &t.Name, &leaderID, &t.Tech, &t.LookingFor, &t.MaxMembers, &t.Status); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		t.Members = make([]entities.User, 0)
		leaderIDs[t.ID] = leaderID
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}

	memberRows, err := p.db.Query(ctx, selectAllMembersQuery)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer memberRows.Close()

	membersByTeam := make(map[int64][]entities.User)
	usersByID := make(map[int64]entities.User)
	for memberRows.Next() {
		var (
			teamID int64
			u      entities.User
		)
		if err := memberRows.Scan(
			&teamID, &u.ID, &u.Name, &u.Skills, &u.Keywords, &u.MainRole, &u.SubRole,
			&u.Rating, &u.Participation, &u.IsLeader, &u.HasReward,
		); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		membersByTeam[teamID] = append(membersByTeam[teamID], u)
		usersByID[u.ID] = u
	}
	if err := memberRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate team members: %w", err)
	}

	for i := range teams {
		if members, ok := membersByTeam[teams[i].ID]; ok {
			teams[i].Members = members
		}
		// The leader is always in team_members, so the joined rows cover it.
		teams[i].Leader = usersByID[leaderIDs[teams[i].ID]]
	}

	return teams, nil
}

// GetTeamDetail returns a team with its applications and invitations,
// counterpart users included.
func (p *Postgres) GetTeamDetail(ctx context.Context, teamID int64) (*entities.TeamDetail, error) {
	team, err := p.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	detail := entities.TeamDetail{Team: *team}

	apps, err := p.queryMembershipList(ctx, selectTeamApplicationsQuery, teamID)
	if err != nil {
		return nil, fmt.Errorf("team applications: %w", err)
	}
	detail.Applications = apps

	invites, err := p.queryMembershipList(ctx, selectTeamInvitationsQuery, teamID)
	if err != nil {
		return nil, fmt.Errorf("team invitations: %w", err)
	}
	detail.Invitations = make([]entities.Invitation, 0, len(invites))
	for _, m := range invites {
		// Application and Invitation share the same shape.
		detail.Invitations = append(detail.Invitations, entities.Invitation(m))
	}

	return &detail, nil
}

// queryMembershipList reads application or invitation rows joined with the
// counterpart user. Both tables share the same shape.
func (p *Postgres) queryMembershipList(ctx context.Context, query string, teamID int64) ([]entities.Application, error) {
	rows, err := p.db.Query(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.Application, 0)
	for rows.Next() {
		var a entities.Application
		if err := rows.Scan(
			&a.ID, &a.TeamID, &a.Status, &a.CreatedAt,
			&a.User.ID, &a.User.Name, &a.User.Skills, &a.User.Keywords, &a.User.MainRole, &a.User.SubRole,
			&a.User.Rating, &a.User.Participation, &a.User.IsLeader, &a.User.HasReward,
		); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

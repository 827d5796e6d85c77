package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"teamup-service/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	userColumns = `id, name, skills, keywords, main_role, sub_role, rating, participation, is_leader, has_reward`

	insertUserQuery = `
INSERT INTO users(name, skills, keywords, main_role, sub_role, rating, participation, is_leader, has_reward)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
RETURNING ` + userColumns

	selectUserQuery = `SELECT ` + userColumns + ` FROM users WHERE id=$1`

	updateProfileQuery = `
UPDATE users
SET name=$2, skills=$3, keywords=$4, main_role=$5, sub_role=$6
WHERE id=$1
RETURNING ` + userColumns
)

type userRow interface {
	Scan(dest ...any) error
}

func scanUser(row userRow) (*entities.User, error) {
	var u entities.User
	if err := row.Scan(
		&u.ID, &u.Name, &u.Skills, &u.Keywords, &u.MainRole, &u.SubRole,
		&u.Rating, &u.Participation, &u.IsLeader, &u.HasReward,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser inserts a user row. Registration lives in the user directory;
// this is store plumbing for seeds and tests.
func (p *Postgres) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	row := p.db.QueryRow(ctx, insertUserQuery,
		user.Name, user.Skills, user.Keywords, user.MainRole, user.SubRole,
		user.Rating, user.Participation, user.IsLeader, user.HasReward,
	)
	created, err := scanUser(row)
	if err != nil {
		p.log.Errorw("failed to insert user", "error", err)
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

// GetUser fetches a user by id.
func (p *Postgres) GetUser(ctx context.Context, userID int64) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, selectUserQuery, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// UpdateProfile overwrites the user-editable fields and returns the updated user.
func (p *Postgres) UpdateProfile(ctx context.Context, userID int64, profile entities.Profile) (*entities.User, error) {
	row := p.db.QueryRow(ctx, updateProfileQuery,
		userID, profile.Name, profile.Skills, profile.Keywords, profile.MainRole, profile.SubRole,
	)
	u, err := scanUser(row)
	if err != nil {
		p.log.Errorw("failed to update profile", "error", err, "user_id", userID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}

	p.log.Infow("profile updated", "user_id", userID)
	return u, nil
}

// FilterUsers applies the conjunctive candidate-search predicates. Role
// matches main_role by case-insensitive substring; skill matches any element
// of the skills set the same way.
func (p *Postgres) FilterUsers(ctx context.Context, filter entities.ApplicantFilter) ([]entities.User, error) {
	var (
		b    strings.Builder
		args []any
	)
	b.WriteString(`SELECT ` + userColumns + ` FROM users`)

	conds := make([]string, 0, 3)
	if filter.Role != "" {
		args = append(args, filter.Role)
		conds = append(conds, fmt.Sprintf("main_role ILIKE '%%'||$%d||'%%'", len(args)))
	}
	if filter.Skill != "" {
		args = append(args, filter.Skill)
		conds = append(conds, fmt.Sprintf("EXISTS (SELECT 1 FROM unnest(skills) s WHERE s ILIKE '%%'||$%d||'%%')", len(args)))
	}
	if filter.MinRating != nil {
		args = append(args, *filter.MinRating)
		conds = append(conds, fmt.Sprintf("rating >= $%d", len(args)))
	}
	if len(conds) > 0 {
		b.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	b.WriteString(" ORDER BY id")

	rows, err := p.db.Query(ctx, b.String(), args...)
	if err != nil {
		p.log.Errorw("failed to filter users", "error", err)
		return nil, fmt.Errorf("filter users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

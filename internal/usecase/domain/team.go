// Package domain contains application Usecases orchestrating domain logic by team.
package domain

import (
	"context"
	"fmt"
	"sort"

	"teamup-service/internal/entities"
)

// CreateTeam creates a team with the leader as its only member.
func (u *Usecase) CreateTeam(ctx context.Context, team entities.NewTeam) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if team.LeaderID == 0 {
		u.log.Errorw("failed to create team: missing leader_id")
		return nil, fmt.Errorf("%w: leader_id is required", entities.ErrInvalidArgument)
	}
	if team.MaxMembers <= 0 {
		u.log.Errorw("failed to create team: non-positive max_members", "max_members", team.MaxMembers)
		return nil, fmt.Errorf("%w: max_members must be a positive integer", entities.ErrInvalidArgument)
	}
	return u.repo.CreateTeam(ctx, team)
}

// ListTeams returns all teams, reward-holding teams first. Within each
// partition teams keep ascending id order. The reward flag is recomputed on
// every call.
func (u *Usecase) ListTeams(ctx context.Context) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	teams, err := u.repo.ListTeams(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(teams, func(i, j int) bool {
		ri, rj := teams[i].HasRewardMember(), teams[j].HasRewardMember()
		if ri != rj {
			return ri
		}
		return teams[i].ID < teams[j].ID
	})

	return teams, nil
}

// TeamDetail returns a team with members, applications and invitations.
func (u *Usecase) TeamDetail(ctx context.Context, teamID int64) (*entities.TeamDetail, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == 0 {
		return nil, fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetTeamDetail(ctx, teamID)
}

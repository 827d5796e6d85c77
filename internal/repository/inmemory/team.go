package inmemory

import (
	"context"
	"sort"

	"teamup-service/internal/entities"
)

// CreateTeam stores a team with the leader as its only member.
func (s *InMemory) CreateTeam(_ context.Context, team entities.NewTeam) (*entities.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[team.LeaderID]; !ok {
		return nil, entities.ErrUserNotFound
	}

	s.nextTeamID++
	rec := teamRecord{
		ID:         s.nextTeamID,
		Name:       team.Name,
		LeaderID:   team.LeaderID,
		Tech:       team.Tech,
		LookingFor: team.LookingFor,
		MaxMembers: team.MaxMembers,
		Status:     entities.TeamOpen,
	}
	s.teams[rec.ID] = rec
	s.members[rec.ID] = map[int64]struct{}{team.LeaderID: {}}

	s.log.Infow("team created", "team_id", rec.ID, "leader_id", team.LeaderID)
	created := s.materializeTeam(rec)
	return &created, nil
}

// GetTeam fetches a team with leader and members.
func (s *InMemory) GetTeam(_ context.Context, teamID int64) (*entities.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.teams[teamID]
	if !ok {
		return nil, entities.ErrTeamNotFound
	}
	t := s.materializeTeam(rec)
	return &t, nil
}

// ListTeams returns all teams in id order.
func (s *InMemory) ListTeams(_ context.Context) ([]entities.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(s.teams))
	for id := range s.teams {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	teams := make([]entities.Team, 0, len(ids))
	for _, id := range ids {
		teams = append(teams, s.materializeTeam(s.teams[id]))
	}
	return teams, nil
}

// GetTeamDetail returns a team with its applications and invitations.
func (s *InMemory) GetTeamDetail(_ context.Context, teamID int64) (*entities.TeamDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.teams[teamID]
	if !ok {
		return nil, entities.ErrTeamNotFound
	}

	detail := entities.TeamDetail{Team: s.materializeTeam(rec)}

	detail.Applications = make([]entities.Application, 0)
	for _, m := range s.sortedMemberships(s.applications, teamID) {
		detail.Applications = append(detail.Applications, entities.Application{
			ID: m.ID, TeamID: m.TeamID, User: s.users[m.UserID], Status: m.Status, CreatedAt: m.CreatedAt,
		})
	}

	detail.Invitations = make([]entities.Invitation, 0)
	for _, m := range s.sortedMemberships(s.invitations, teamID) {
		detail.Invitations = append(detail.Invitations, entities.Invitation{
			ID: m.ID, TeamID: m.TeamID, User: s.users[m.UserID], Status: m.Status, CreatedAt: m.CreatedAt,
		})
	}

	return &detail, nil
}

// sortedMemberships returns a team's application or invitation records in id
// order. Caller must hold the mutex.
func (s *InMemory) sortedMemberships(table map[int64]membershipRecord, teamID int64) []membershipRecord {
	list := make([]membershipRecord, 0)
	for _, m := range table {
		if m.TeamID == teamID {
			list = append(list, m)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

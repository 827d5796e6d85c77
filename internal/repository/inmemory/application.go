package inmemory

import (
	"context"
	"sort"
	"time"

	"teamup-service/internal/entities"
)

// CreateApplication files a pending application. Duplicates are allowed.
func (s *InMemory) CreateApplication(_ context.Context, teamID, userID int64) (*entities.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[teamID]; !ok {
		return nil, entities.ErrTeamNotFound
	}
	applicant, ok := s.users[userID]
	if !ok {
		return nil, entities.ErrUserNotFound
	}

	s.nextApplication++
	rec := membershipRecord{
		ID:        s.nextApplication,
		TeamID:    teamID,
		UserID:    userID,
		Status:    entities.StatusPending,
		CreatedAt: time.Now(),
	}
	s.applications[rec.ID] = rec

	s.log.Infow("application created", "application_id", rec.ID, "team_id", teamID, "user_id", userID)
	return &entities.Application{ID: rec.ID, TeamID: teamID, User: applicant, Status: rec.Status, CreatedAt: rec.CreatedAt}, nil
}

// AcceptApplication adds the applicant to the roster and marks the
// application accepted. Only the team leader may accept.
func (s *InMemory) AcceptApplication(_ context.Context, applicationID, actorID int64) (*entities.Application, error) {
	return s.decideApplication(applicationID, actorID, entities.StatusAccepted)
}

// RejectApplication marks the application rejected with no roster effect.
func (s *InMemory) RejectApplication(_ context.Context, applicationID, actorID int64) (*entities.Application, error) {
	return s.decideApplication(applicationID, actorID, entities.StatusRejected)
}

func (s *InMemory) decideApplication(applicationID, actorID int64, status entities.MembershipStatus) (*entities.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.applications[applicationID]
	if !ok {
		return nil, entities.ErrApplicationNotFound
	}
	team := s.materializeTeam(s.teams[rec.TeamID])
	if !team.IsLedBy(actorID) {
		return nil, entities.ErrForbidden
	}

	if status == entities.StatusAccepted {
		s.members[rec.TeamID][rec.UserID] = struct{}{}
	}
	rec.Status = status
	s.applications[applicationID] = rec

	s.log.Infow("application decided", "application_id", applicationID, "status", status, "actor_id", actorID)
	return &entities.Application{ID: rec.ID, TeamID: rec.TeamID, User: s.users[rec.UserID], Status: rec.Status, CreatedAt: rec.CreatedAt}, nil
}

// ApplicationsByUser lists the user's applications as compact refs.
func (s *InMemory) ApplicationsByUser(_ context.Context, userID int64) ([]entities.MembershipRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return refsByUser(s.applications, userID), nil
}

func refsByUser(table map[int64]membershipRecord, userID int64) []entities.MembershipRef {
	refs := make([]entities.MembershipRef, 0)
	for _, m := range table {
		if m.UserID == userID {
			refs = append(refs, entities.MembershipRef{ID: m.ID, TeamID: m.TeamID, Status: m.Status})
		}
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].ID < refs[j].ID })
	return refs
}

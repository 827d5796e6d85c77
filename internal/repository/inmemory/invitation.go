package inmemory

import (
	"context"
	"time"

	"teamup-service/internal/entities"
)

// CreateInvitation files a pending invitation. Only the team leader may invite.
func (s *InMemory) CreateInvitation(_ context.Context, teamID, userID, actorID int64) (*entities.Invitation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.teams[teamID]
	if !ok {
		return nil, entities.ErrTeamNotFound
	}
	if !s.materializeTeam(rec).IsLedBy(actorID) {
		return nil, entities.ErrForbidden
	}
	invitee, ok := s.users[userID]
	if !ok {
		return nil, entities.ErrUserNotFound
	}

	s.nextInvitationID++
	inv := membershipRecord{
		ID:        s.nextInvitationID,
		TeamID:    teamID,
		UserID:    userID,
		Status:    entities.StatusPending,
		CreatedAt: time.Now(),
	}
	s.invitations[inv.ID] = inv

	s.log.Infow("invitation created", "invitation_id", inv.ID, "team_id", teamID, "user_id", userID)
	return &entities.Invitation{ID: inv.ID, TeamID: teamID, User: invitee, Status: inv.Status, CreatedAt: inv.CreatedAt}, nil
}

// AcceptInvitation adds the acting user to the roster and marks the
// invitation accepted. A foreign invitation reads as not found.
func (s *InMemory) AcceptInvitation(_ context.Context, invitationID, actorID int64) (*entities.Invitation, error) {
	return s.decideInvitation(invitationID, actorID, entities.StatusAccepted)
}

// RejectInvitation marks the invitation rejected with no roster effect.
func (s *InMemory) RejectInvitation(_ context.Context, invitationID, actorID int64) (*entities.Invitation, error) {
	return s.decideInvitation(invitationID, actorID, entities.StatusRejected)
}

func (s *InMemory) decideInvitation(invitationID, actorID int64, status entities.MembershipStatus) (*entities.Invitation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.invitations[invitationID]
	if !ok || rec.UserID != actorID {
		return nil, entities.ErrInvitationNotFound
	}

	if status == entities.StatusAccepted {
		s.members[rec.TeamID][rec.UserID] = struct{}{}
	}
	rec.Status = status
	s.invitations[invitationID] = rec

	s.log.Infow("invitation decided", "invitation_id", invitationID, "status", status, "actor_id", actorID)
	return &entities.Invitation{ID: rec.ID, TeamID: rec.TeamID, User: s.users[rec.UserID], Status: rec.Status, CreatedAt: rec.CreatedAt}, nil
}

// InvitationsByUser lists the user's invitations as compact refs.
func (s *InMemory) InvitationsByUser(_ context.Context, userID int64) ([]entities.MembershipRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return refsByUser(s.invitations, userID), nil
}

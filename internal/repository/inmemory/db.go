// Package inmemory implements the repository over process-local maps. It
// backs tests and local development; a single mutex serializes operations so
// every transition applies atomically.
package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"teamup-service/internal/entities"

	"go.uber.org/zap"
)

type teamRecord struct {
	ID         int64
	Name       string
	LeaderID   int64
	Tech       []string
	LookingFor []string
	MaxMembers int
	Status     entities.TeamStatus
}

// membershipRecord stores one application or invitation row.
type membershipRecord struct {
	ID        int64
	TeamID    int64
	UserID    int64
	Status    entities.MembershipStatus
	CreatedAt time.Time
}

// InMemory is a map-backed repository.
type InMemory struct {
	log *zap.SugaredLogger

	mu           sync.Mutex
	users        map[int64]entities.User
	teams        map[int64]teamRecord
	members      map[int64]map[int64]struct{}
	applications map[int64]membershipRecord
	invitations  map[int64]membershipRecord

	nextUserID       int64
	nextTeamID       int64
	nextApplication  int64
	nextInvitationID int64
}

// New creates an empty in-memory repository.
func New(log *zap.SugaredLogger) *InMemory {
	return &InMemory{
		log:          log.Named("repo.inmemory"),
		users:        map[int64]entities.User{},
		teams:        map[int64]teamRecord{},
		members:      map[int64]map[int64]struct{}{},
		applications: map[int64]membershipRecord{},
		invitations:  map[int64]membershipRecord{},
	}
}

// OnStart is a no-op for the in-memory backend.
func (s *InMemory) OnStart(_ context.Context) error { return nil }

// OnStop is a no-op for the in-memory backend.
func (s *InMemory) OnStop(_ context.Context) error { return nil }

// materializeTeam builds the Team entity for a record, leader and members
// included. Caller must hold the mutex.
func (s *InMemory) materializeTeam(rec teamRecord) entities.Team {
	memberIDs := make([]int64, 0, len(s.members[rec.ID]))
	for id := range s.members[rec.ID] {
		memberIDs = append(memberIDs, id)
	}
	sort.Slice(memberIDs, func(i, j int) bool { return memberIDs[i] < memberIDs[j] })

	members := make([]entities.User, 0, len(memberIDs))
	for _, id := range memberIDs {
		members = append(members, s.users[id])
	}

	return entities.Team{
		ID:         rec.ID,
		Name:       rec.Name,
		Leader:     s.users[rec.LeaderID],
		Tech:       rec.Tech,
		LookingFor: rec.LookingFor,
		MaxMembers: rec.MaxMembers,
		Status:     rec.Status,
		Members:    members,
	}
}

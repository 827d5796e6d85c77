package inmemory

import (
	"context"
	"sort"
	"strings"

	"teamup-service/internal/entities"
)

// CreateUser stores a user, assigning an id if none is set.
func (s *InMemory) CreateUser(_ context.Context, user entities.User) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == 0 {
		s.nextUserID++
		user.ID = s.nextUserID
	} else if user.ID > s.nextUserID {
		s.nextUserID = user.ID
	}
	s.users[user.ID] = user
	return &user, nil
}

// GetUser fetches a user by id.
func (s *InMemory) GetUser(_ context.Context, userID int64) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return &u, nil
}

// UpdateProfile overwrites the user-editable fields.
func (s *InMemory) UpdateProfile(_ context.Context, userID int64, profile entities.Profile) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	u.Name = profile.Name
	u.Skills = profile.Skills
	u.Keywords = profile.Keywords
	u.MainRole = profile.MainRole
	u.SubRole = profile.SubRole
	s.users[userID] = u

	s.log.Infow("profile updated", "user_id", userID)
	return &u, nil
}

// FilterUsers applies the conjunctive candidate-search predicates in id order.
func (s *InMemory) FilterUsers(_ context.Context, filter entities.ApplicantFilter) ([]entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	matched := make([]entities.User, 0)
	for _, id := range ids {
		u := s.users[id]
		if filter.Role != "" && !containsFold(u.MainRole, filter.Role) {
			continue
		}
		if filter.Skill != "" && !anyContainsFold(u.Skills, filter.Skill) {
			continue
		}
		if filter.MinRating != nil && u.Rating < *filter.MinRating {
			continue
		}
		matched = append(matched, u)
	}
	return matched, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func anyContainsFold(list []string, needle string) bool {
	for _, v := range list {
		if containsFold(v, needle) {
			return true
		}
	}
	return false
}

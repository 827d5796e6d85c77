// Package domain contains application Usecases orchestrating domain logic by user.
package domain

import (
	"context"
	"strconv"

	"teamup-service/internal/entities"
)

// UpdateProfile overwrites the actor's editable profile fields.
func (u *Usecase) UpdateProfile(ctx context.Context, actorID int64, profile entities.Profile) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.UpdateProfile(ctx, actorID, profile)
}

// FilterApplicants searches the user population with conjunctive optional
// predicates. A non-numeric min_rating drops the rating predicate instead of
// failing; that leniency is part of the contract.
func (u *Usecase) FilterApplicants(ctx context.Context, query entities.ApplicantQuery) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	filter := entities.ApplicantFilter{
		Role:  query.Role,
		Skill: query.Skill,
	}
	if query.MinRating != "" {
		if min, err := strconv.ParseFloat(query.MinRating, 64); err == nil {
			filter.MinRating = &min
		} else {
			u.log.Debugw("ignoring non-numeric min_rating", "min_rating", query.MinRating)
		}
	}

	return u.repo.FilterUsers(ctx, filter)
}

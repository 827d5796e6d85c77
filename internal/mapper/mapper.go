// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"teamup-service/internal/entities"
	"teamup-service/internal/transport/http/dto"
)

// ToUserView maps entities.User to its transport view.
func ToUserView(u entities.User) dto.User {
	return dto.User{
		ID:            u.ID,
		Name:          u.Name,
		Skills:        u.Skills,
		MainRole:      u.MainRole,
		Keywords:      u.Keywords,
		Rating:        u.Rating,
		Participation: u.Participation,
	}
}

// ToUserViews maps a slice of users.
func ToUserViews(users []entities.User) []dto.User {
	res := make([]dto.User, 0, len(users))
	for _, u := range users {
		res = append(res, ToUserView(u))
	}
	return res
}

// ToTeamView maps entities.Team to its transport view.
func ToTeamView(t entities.Team) dto.Team {
	return dto.Team{
		ID:         t.ID,
		Name:       t.Name,
		Leader:     ToUserView(t.Leader),
		Tech:       t.Tech,
		LookingFor: t.LookingFor,
		MaxMembers: t.MaxMembers,
		Status:     string(t.Status),
		Members:    ToUserViews(t.Members),
	}
}

// ToTeamViews maps a slice of teams preserving order.
func ToTeamViews(teams []entities.Team) []dto.Team {
	res := make([]dto.Team, 0, len(teams))
	for _, t := range teams {
		res = append(res, ToTeamView(t))
	}
	return res
}

// ToTeamDetailView maps a team with its application and invitation history.
func ToTeamDetailView(d entities.TeamDetail) dto.TeamDetail {
	apps := make([]dto.Membership, 0, len(d.Applications))
	for _, a := range d.Applications {
		apps = append(apps, dto.Membership{ID: a.ID, User: ToUserView(a.User), Status: string(a.Status)})
	}

	invites := make([]dto.Membership, 0, len(d.Invitations))
	for _, i := range d.Invitations {
		invites = append(invites, dto.Membership{ID: i.ID, User: ToUserView(i.User), Status: string(i.Status)})
	}

	return dto.TeamDetail{
		Team:         ToTeamView(d.Team),
		Applications: apps,
		Invitations:  invites,
	}
}

// ToMembershipRefViews maps compact refs for "my" listings.
func ToMembershipRefViews(refs []entities.MembershipRef) []dto.MembershipRef {
	res := make([]dto.MembershipRef, 0, len(refs))
	for _, r := range refs {
		res = append(res, dto.MembershipRef{ID: r.ID, Team: r.TeamID, Status: string(r.Status)})
	}
	return res
}

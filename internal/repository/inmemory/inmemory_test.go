package inmemory_test

import (
	"context"
	"testing"

	"teamup-service/internal/entities"
	"teamup-service/internal/repository/inmemory"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStore(t *testing.T) *inmemory.InMemory {
	t.Helper()
	return inmemory.New(zap.NewNop().Sugar())
}

func seedUser(t *testing.T, store *inmemory.InMemory, user entities.User) *entities.User {
	t.Helper()
	created, err := store.CreateUser(context.Background(), user)
	require.NoError(t, err)
	return created
}

func seedTeam(t *testing.T, store *inmemory.InMemory, leaderID int64) *entities.Team {
	t.Helper()
	team, err := store.CreateTeam(context.Background(), entities.NewTeam{
		LeaderID:   leaderID,
		Name:       "alpha",
		Tech:       []string{"go", "postgres"},
		LookingFor: []string{"backend"},
		MaxMembers: 4,
	})
	require.NoError(t, err)
	return team
}

func TestCreateTeamSeedsLeaderMembership(t *testing.T) {
	store := newStore(t)
	leader := seedUser(t, store, entities.User{Name: "lena", IsLeader: true})

	team := seedTeam(t, store, leader.ID)

	require.Equal(t, leader.ID, team.Leader.ID)
	require.Len(t, team.Members, 1)
	require.Equal(t, leader.ID, team.Members[0].ID)
	require.Equal(t, entities.TeamOpen, team.Status)
}

func TestCreateTeamUnknownLeader(t *testing.T) {
	store := newStore(t)

	_, err := store.CreateTeam(context.Background(), entities.NewTeam{LeaderID: 99, MaxMembers: 3})
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestAcceptApplicationByLeader(t *testing.T) {
	store := newStore(t)
	leader := seedUser(t, store, entities.User{Name: "lena"})
	applicant := seedUser(t, store, entities.User{Name: "marc"})
	team := seedTeam(t, store, leader.ID)

	app, err := store.CreateApplication(context.Background(), team.ID, applicant.ID)
	require.NoError(t, err)
	require.Equal(t, entities.StatusPending, app.Status)

	decided, err := store.AcceptApplication(context.Background(), app.ID, leader.ID)
	require.NoError(t, err)
	require.Equal(t, entities.StatusAccepted, decided.Status)

	got, err := store.GetTeam(context.Background(), team.ID)
	require.NoError(t, err)
	require.Len(t, got.Members, 2)
	require.Equal(t, applicant.ID, got.Members[1].ID)
}

func TestAcceptApplicationByNonLeader(t *testing.T) {
	store := newStore(t)
	leader := seedUser(t, store, entities.User{Name: "lena"})
	applicant := seedUser(t, store, entities.User{Name: "marc"})
	stranger := seedUser(t, store, entities.User{Name: "nils"})
	team := seedTeam(t, store, leader.ID)

	app, err := store.CreateApplication(context.Background(), team.ID, applicant.ID)
	require.NoError(t, err)

	_, err = store.AcceptApplication(context.Background(), app.ID, stranger.ID)
	require.ErrorIs(t, err, entities.ErrForbidden)

	// State must be untouched after the refused transition.
	got, err := store.GetTeam(context.Background(), team.ID)
	require.NoError(t, err)
	require.Len(t, got.Members, 1)

	refs, err := store.ApplicationsByUser(context.Background(), applicant.ID)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	require.Equal(t, entities.StatusPending, refs[0].Status)
}

func TestRejectApplicationKeepsRoster(t *testing.T) {
	store := newStore(t)
	leader := seedUser(t, store, entities.User{Name: "lena"})
	applicant := seedUser(t, store, entities.User{Name: "marc"})
	team := seedTeam(t, store, leader.ID)

	app, err := store.CreateApplication(context.Background(), team.ID, applicant.ID)
	require.NoError(t, err)

	decided, err := store.RejectApplication(context.Background(), app.ID, leader.ID)
	require.NoError(t, err)
	require.Equal(t, entities.StatusRejected, decided.Status)

	got, err := store.GetTeam(context.Background(), team.ID)
	require.NoError(t, err)
	require.Len(t, got.Members, 1)
}

func TestDuplicateApplicationsAllowed(t *testing.T) {
	store := newStore(t)
	leader := seedUser(t, store, entities.User{Name: "lena"})
	applicant := seedUser(t, store, entities.User{Name: "marc"})
	team := seedTeam(t, store, leader.ID)

	first, err := store.CreateApplication(context.Background(), team.ID, applicant.ID)
	require.NoError(t, err)
	second, err := store.CreateApplication(context.Background(), team.ID, applicant.ID)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	refs, err := store.ApplicationsByUser(context.Background(), applicant.ID)
	require.NoError(t, err)
	require.Len(t, refs, 2)
}

func TestInviteByNonLeader(t *testing.T) {
	store := newStore(t)
	leader := seedUser(t, store, entities.User{Name: "lena"})
	invitee := seedUser(t, store, entities.User{Name: "marc"})
	stranger := seedUser(t, store, entities.User{Name: "nils"})
	team := seedTeam(t, store, leader.ID)

	_, err := store.CreateInvitation(context.Background(), team.ID, invitee.ID, stranger.ID)
	require.ErrorIs(t, err, entities.ErrForbidden)
}

func TestAcceptInvitationJoinsTeam(t *testing.T) {
	store := newStore(t)
	leader := seedUser(t, store, entities.User{Name: "lena"})
	invitee := seedUser(t, store, entities.User{Name: "marc"})
	team := seedTeam(t, store, leader.ID)

	inv, err := store.CreateInvitation(context.Background(), team.ID, invitee.ID, leader.ID)
	require.NoError(t, err)
	require.Equal(t, entities.StatusPending, inv.Status)

	decided, err := store.AcceptInvitation(context.Background(), inv.ID, invitee.ID)
	require.NoError(t, err)
	require.Equal(t, entities.StatusAccepted, decided.Status)

	got, err := store.GetTeam(context.Background(), team.ID)
	require.NoError(t, err)
	require.Len(t, got.Members, 2)
}

func TestForeignInvitationReadsAsNotFound(t *testing.T) {
	store := newStore(t)
	leader := seedUser(t, store, entities.User{Name: "lena"})
	invitee := seedUser(t, store, entities.User{Name: "marc"})
	other := seedUser(t, store, entities.User{Name: "nils"})
	team := seedTeam(t, store, leader.ID)

	inv, err := store.CreateInvitation(context.Background(), team.ID, invitee.ID, leader.ID)
	require.NoError(t, err)

	_, err = store.AcceptInvitation(context.Background(), inv.ID, other.ID)
	require.ErrorIs(t, err, entities.ErrInvitationNotFound)

	refs, err := store.InvitationsByUser(context.Background(), invitee.ID)
	require.NoError(t, err)
	require.Equal(t, entities.StatusPending, refs[0].Status)
}

func TestRejectInvitationKeepsRoster(t *testing.T) {
	store := newStore(t)
	leader := seedUser(t, store, entities.User{Name: "lena"})
	invitee := seedUser(t, store, entities.User{Name: "marc"})
	team := seedTeam(t, store, leader.ID)

	inv, err := store.CreateInvitation(context.Background(), team.ID, invitee.ID, leader.ID)
	require.NoError(t, err)

	decided, err := store.RejectInvitation(context.Background(), inv.ID, invitee.ID)
	require.NoError(t, err)
	require.Equal(t, entities.StatusRejected, decided.Status)

	got, err := store.GetTeam(context.Background(), team.ID)
	require.NoError(t, err)
	require.Len(t, got.Members, 1)
}

func TestGetTeamDetailCollectsMemberships(t *testing.T) {
	store := newStore(t)
	leader := seedUser(t, store, entities.User{Name: "lena"})
	applicant := seedUser(t, store, entities.User{Name: "marc"})
	invitee := seedUser(t, store, entities.User{Name: "nils"})
	team := seedTeam(t, store, leader.ID)

	_, err := store.CreateApplication(context.Background(), team.ID, applicant.ID)
	require.NoError(t, err)
	_, err = store.CreateInvitation(context.Background(), team.ID, invitee.ID, leader.ID)
	require.NoError(t, err)

	detail, err := store.GetTeamDetail(context.Background(), team.ID)
	require.NoError(t, err)
	require.Len(t, detail.Applications, 1)
	require.Equal(t, applicant.ID, detail.Applications[0].User.ID)
	require.Len(t, detail.Invitations, 1)
	require.Equal(t, invitee.ID, detail.Invitations[0].User.ID)
}

func TestUpdateProfileOverwritesFields(t *testing.T) {
	store := newStore(t)
	user := seedUser(t, store, entities.User{Name: "lena", Skills: []string{"go"}, Rating: 4.2})

	updated, err := store.UpdateProfile(context.Background(), user.ID, entities.Profile{
		Name:     "lena b",
		Skills:   []string{"go", "rust"},
		Keywords: []string{"night owl"},
		MainRole: "backend",
		SubRole:  "devops",
	})
	require.NoError(t, err)
	require.Equal(t, "lena b", updated.Name)
	require.Equal(t, []string{"go", "rust"}, updated.Skills)
	require.Equal(t, "backend", updated.MainRole)
	require.InDelta(t, 4.2, updated.Rating, 0.001)
}

func TestFilterUsers(t *testing.T) {
	store := newStore(t)
	seedUser(t, store, entities.User{Name: "lena", MainRole: "Backend", Skills: []string{"Go", "Postgres"}, Rating: 4.5})
	seedUser(t, store, entities.User{Name: "marc", MainRole: "frontend", Skills: []string{"react"}, Rating: 3.0})
	seedUser(t, store, entities.User{Name: "nils", MainRole: "backend", Skills: []string{"python"}, Rating: 2.0})

	users, err := store.FilterUsers(context.Background(), entities.ApplicantFilter{Role: "back"})
	require.NoError(t, err)
	require.Len(t, users, 2)

	users, err = store.FilterUsers(context.Background(), entities.ApplicantFilter{Role: "backend", Skill: "go"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "lena", users[0].Name)

	min := 2.5
	users, err = store.FilterUsers(context.Background(), entities.ApplicantFilter{MinRating: &min})
	require.NoError(t, err)
	require.Len(t, users, 2)
}

package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"teamup-service/config"
	"teamup-service/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	leader, err := repo.CreateUser(ctx, entities.User{
		Name: "Alice", Skills: []string{"go", "postgres"}, MainRole: "backend", Rating: 4.8, IsLeader: true,
	})
	require.NoError(t, err)
	applicant, err := repo.CreateUser(ctx, entities.User{
		Name: "Bob", Skills: []string{"react", "typescript"}, MainRole: "frontend", Rating: 3.9,
	})
	require.NoError(t, err)
	invitee, err := repo.CreateUser(ctx, entities.User{
		Name: "Charlie", Skills: []string{"figma"}, MainRole: "design", Rating: 4.1, HasReward: true,
	})
	require.NoError(t, err)

	team, err := repo.CreateTeam(ctx, entities.NewTeam{
		LeaderID:   leader.ID,
		Name:       "hack-night",
		Tech:       []string{"go", "react"},
		LookingFor: []string{"frontend", "design"},
		MaxMembers: 4,
	})
	require.NoError(t, err)
	require.Equal(t, leader.ID, team.Leader.ID)
	require.Len(t, team.Members, 1)

	app, err := repo.CreateApplication(ctx, team.ID, applicant.ID)
	require.NoError(t, err)
	require.Equal(t, entities.StatusPending, app.Status)

	_, err = repo.AcceptApplication(ctx, app.ID, applicant.ID)
	require.ErrorIs(t, err, entities.ErrForbidden)

	accepted, err := repo.AcceptApplication(ctx, app.ID, leader.ID)
	require.NoError(t, err)
	require.Equal(t, entities.StatusAccepted, accepted.Status)

	afterAccept, err := repo.GetTeam(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, afterAccept.Members, 2)

	_, err = repo.CreateInvitation(ctx, team.ID, invitee.ID, applicant.ID)
	require.ErrorIs(t, err, entities.ErrForbidden)

	inv, err := repo.CreateInvitation(ctx, team.ID, invitee.ID, leader.ID)
	require.NoError(t, err)
	require.Equal(t, entities.StatusPending, inv.Status)

	_, err = repo.AcceptInvitation(ctx, inv.ID, applicant.ID)
	require.ErrorIs(t, err, entities.ErrInvitationNotFound)

	joined, err := repo.AcceptInvitation(ctx, inv.ID, invitee.ID)
	require.NoError(t, err)
	require.Equal(t, entities.StatusAccepted, joined.Status)

	full, err := repo.GetTeam(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, full.Members, 3)
	require.True(t, full.HasRewardMember())

	detail, err := repo.GetTeamDetail(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, detail.Applications, 1)
	require.Len(t, detail.Invitations, 1)
	require.Equal(t, entities.StatusAccepted, detail.Applications[0].Status)

	teams, err := repo.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	require.Len(t, teams[0].Members, 3)

	myApps, err := repo.ApplicationsByUser(ctx, applicant.ID)
	require.NoError(t, err)
	require.Len(t, myApps, 1)
	require.Equal(t, team.ID, myApps[0].TeamID)

	myInvs, err := repo.InvitationsByUser(ctx, invitee.ID)
	require.NoError(t, err)
	require.Len(t, myInvs, 1)
	require.Equal(t, entities.StatusAccepted, myInvs[0].Status)
}

func TestRepositoryFilterIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	_, err := repo.CreateUser(ctx, entities.User{Name: "Alice", MainRole: "Backend", Skills: []string{"Go", "Postgres"}, Rating: 4.5})
	require.NoError(t, err)
	_, err = repo.CreateUser(ctx, entities.User{Name: "Bob", MainRole: "frontend", Skills: []string{"react"}, Rating: 3.0})
	require.NoError(t, err)
	_, err = repo.CreateUser(ctx, entities.User{Name: "Charlie", MainRole: "backend", Skills: []string{"python"}, Rating: 2.0})
	require.NoError(t, err)

	users, err := repo.FilterUsers(ctx, entities.ApplicantFilter{Role: "back"})
	require.NoError(t, err)
	require.Len(t, users, 2)

	users, err = repo.FilterUsers(ctx, entities.ApplicantFilter{Role: "backend", Skill: "go"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "Alice", users[0].Name)

	min := 2.5
	users, err = repo.FilterUsers(ctx, entities.ApplicantFilter{MinRating: &min})
	require.NoError(t, err)
	require.Len(t, users, 2)

	users, err = repo.FilterUsers(ctx, entities.ApplicantFilter{})
	require.NoError(t, err)
	require.Len(t, users, 3)
}

func TestRepositoryProfileIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	user, err := repo.CreateUser(ctx, entities.User{Name: "Alice", Skills: []string{"go"}, Rating: 4.2, Participation: 3})
	require.NoError(t, err)

	updated, err := repo.UpdateProfile(ctx, user.ID, entities.Profile{
		Name:     "Alice B",
		Skills:   []string{"go", "rust"},
		Keywords: []string{"night owl"},
		MainRole: "backend",
		SubRole:  "devops",
	})
	require.NoError(t, err)
	require.Equal(t, "Alice B", updated.Name)
	require.Equal(t, []string{"go", "rust"}, updated.Skills)
	require.InDelta(t, 4.2, updated.Rating, 0.001)
	require.Equal(t, 3, updated.Participation)

	_, err = repo.UpdateProfile(ctx, user.ID+100, entities.Profile{Name: "nobody"})
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=teamup_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server:     config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:       config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Repository: config.RepositoryConfig{Backend: "postgres"},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "teamup_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=teamup_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}

//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"

	"example.com/sweatjunkies/internal/domain"
)

func startDatabase(t *testing.T, ctx context.Context) *pgxpool.Pool {
	t.Helper()

	pg, err := postgrescontainer.RunContainer(ctx,
		postgrescontainer.WithDatabase("sweatjunkies"),
		postgrescontainer.WithUsername("sweatjunkies"),
		postgrescontainer.WithPassword("sweatjunkies"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, waitForDatabase(ctx, connStr))

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	require.NoError(t, EnsureSchema(ctx, pool))
	return pool
}

func waitForDatabase(ctx context.Context, connStr string) error {
	deadline := time.Now().Add(30 * time.Second)
	for {
		pool, err := pgxpool.New(ctx, connStr)
		if err == nil {
			err = pool.Ping(ctx)
			pool.Close()
			if err == nil {
				return nil
			}
		}
		if time.Now().After(deadline) {
			return err
		}
		time.Sleep(time.Second)
	}
}

func seedAthlete(t *testing.T, ctx context.Context, repo *AthleteRepository, first, last, email string) domain.Athlete {
	t.Helper()
	athlete := domain.Athlete{
		ID:           uuid.NewString(),
		FirstName:    first,
		LastName:     last,
		Email:        email,
		PasswordHash: "hash",
	}
	require.NoError(t, repo.Create(ctx, athlete))
	return athlete
}

func TestAthleteRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	pool := startDatabase(t, ctx)
	repo := NewAthleteRepository(pool)

	athlete := seedAthlete(t, ctx, repo, "John", "Doe", "john@example.com")

	stored, err := repo.FindByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, athlete.ID, stored.ID)

	missing, err := repo.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, missing)

	// Email uniqueness is enforced by the schema.
	err = repo.Create(ctx, domain.Athlete{
		ID:           uuid.NewString(),
		FirstName:    "Johnny",
		LastName:     "Doe",
		Email:        "john@example.com",
		PasswordHash: "hash2",
	})
	require.Error(t, err)

	stored.FirstName = "Johnny"
	require.NoError(t, repo.Update(ctx, *stored))
	updated, err := repo.FindByID(ctx, athlete.ID)
	require.NoError(t, err)
	require.Equal(t, "Johnny", updated.FirstName)
}

func TestDeleteAthleteCascades(t *testing.T) {
	ctx := context.Background()
	pool := startDatabase(t, ctx)

	athletes := NewAthleteRepository(pool)
	activities := NewActivityRepository(pool)
	races := NewRaceRepository(pool)

	athlete := seedAthlete(t, ctx, athletes, "John", "Doe", "john@example.com")

	require.NoError(t, activities.Create(ctx, domain.Activity{
		ID:          uuid.NewString(),
		Description: "Swimming",
		DurationMin: 60,
		Date:        time.Date(2024, 9, 3, 0, 0, 0, 0, time.UTC),
		AthleteID:   athlete.ID,
	}))

	race := domain.Race{
		ID:       uuid.NewString(),
		RaceName: "5K Marathon",
		Date:     time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
		Distance: "5.0 km",
	}
	require.NoError(t, races.CreateRace(ctx, race))
	require.NoError(t, races.CreateParticipation(ctx, domain.RaceParticipation{
		ID:             uuid.NewString(),
		RaceID:         race.ID,
		AthleteID:      athlete.ID,
		CompletionTime: "00:27:30",
	}))

	require.NoError(t, athletes.Delete(ctx, athlete.ID))

	remaining, err := activities.ListByAthlete(ctx, athlete.ID)
	require.NoError(t, err)
	require.Empty(t, remaining)

	participations, err := races.ListAllParticipations(ctx)
	require.NoError(t, err)
	require.Empty(t, participations)

	// The race itself is not owned by the athlete and survives.
	listed, err := races.ListWithParticipants(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Empty(t, listed[0].Participants)
}

func TestListWithParticipantsGroupsNames(t *testing.T) {
	ctx := context.Background()
	pool := startDatabase(t, ctx)

	athletes := NewAthleteRepository(pool)
	races := NewRaceRepository(pool)

	john := seedAthlete(t, ctx, athletes, "John", "Doe", "john@example.com")
	jane := seedAthlete(t, ctx, athletes, "Jane", "Smith", "jane@example.com")

	race := domain.Race{
		ID:         uuid.NewString(),
		RaceName:   "5K Marathon",
		Date:       time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
		Distance:   "5.0 km",
		FinishTime: "00:25:00",
	}
	require.NoError(t, races.CreateRace(ctx, race))
	for _, athlete := range []domain.Athlete{john, jane} {
		require.NoError(t, races.CreateParticipation(ctx, domain.RaceParticipation{
			ID:        uuid.NewString(),
			RaceID:    race.ID,
			AthleteID: athlete.ID,
		}))
	}

	listed, err := races.ListWithParticipants(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.ElementsMatch(t, []string{"John Doe", "Jane Smith"}, listed[0].Participants)
	require.Equal(t, "00:25:00", listed[0].FinishTime)

	johnRaces, err := races.ListByAthlete(ctx, john.ID)
	require.NoError(t, err)
	require.Len(t, johnRaces, 1)
	require.Equal(t, race.ID, johnRaces[0].ID)
}

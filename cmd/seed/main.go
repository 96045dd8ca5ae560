// Command seed populates the database with a small demo dataset:
// five athletes with one activity each, plus a pair of races with
// participations.
package main

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"example.com/sweatjunkies/internal/auth"
	"example.com/sweatjunkies/internal/config"
	"example.com/sweatjunkies/internal/domain"
	"example.com/sweatjunkies/internal/notify"
	persistence "example.com/sweatjunkies/internal/persistence/postgres"
)

type seedAthlete struct {
	firstName string
	lastName  string
	email     string
	activity  string
	duration  int
	date      string
}

var athletes = []seedAthlete{
	{"John", "Doe", "john@example.com", "Swimming", 60, "2024-09-03"},
	{"Jane", "Smith", "jane@example.com", "Cycling", 90, "2024-09-04"},
	{"Alice", "Johnson", "alice@example.com", "Running", 45, "2024-09-05"},
	{"Bob", "Brown", "bob@example.com", "Yoga", 30, "2024-09-06"},
	{"Charlie", "Davis", "charlie@example.com", "Hiking", 120, "2024-09-07"},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	if err := persistence.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	authCfg := auth.Config{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer, ResetSalt: cfg.ResetSalt}
	service := domain.NewService(
		persistence.NewAthleteRepository(pool),
		persistence.NewActivityRepository(pool),
		persistence.NewRaceRepository(pool),
		auth.NewBcryptHasher(cfg.BcryptCost),
		auth.NewResetSigner(authCfg),
		notify.LogMailer{},
		cfg.FrontendOrigin,
	)

	for _, seed := range athletes {
		athlete, err := service.CreateAthlete(ctx, domain.RegisterInput{
			Email:     seed.email,
			Password:  "password123",
			FirstName: seed.firstName,
			LastName:  seed.lastName,
		})
		if err != nil {
			log.Fatalf("seed athlete %s: %v", seed.email, err)
		}

		date, err := time.Parse("2006-01-02", seed.date)
		if err != nil {
			log.Fatalf("seed date %s: %v", seed.date, err)
		}
		if _, err := service.CreateActivity(ctx, athlete.Email, domain.CreateActivityInput{
			Description: seed.activity,
			DurationMin: seed.duration,
			Date:        date,
		}); err != nil {
			log.Fatalf("seed activity for %s: %v", seed.email, err)
		}
	}

	races := []domain.CreateRaceInput{
		{RaceName: "5K Marathon", Date: mustDate("2024-10-01"), Distance: "5.0 km", FinishTime: "00:25:00", CompletionTime: "00:27:30"},
		{RaceName: "City Half Marathon", Date: mustDate("2024-11-12"), Distance: "21.1 km", FinishTime: "01:45:00", CompletionTime: "01:52:10"},
	}
	for i, race := range races {
		if _, err := service.CreateRace(ctx, athletes[i].email, race); err != nil {
			log.Fatalf("seed race %s: %v", race.RaceName, err)
		}
	}

	log.Println("seed complete")
}

func mustDate(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		log.Fatalf("bad seed date %s: %v", value, err)
	}
	return parsed
}

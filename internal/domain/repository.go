package domain

import "context"

// AthleteRepository captures persistence operations on athletes.
// Find methods return (nil, nil) when no row matches.
type AthleteRepository interface {
	Create(ctx context.Context, athlete Athlete) error
	FindByEmail(ctx context.Context, email string) (*Athlete, error)
	FindByID(ctx context.Context, id string) (*Athlete, error)
	Update(ctx context.Context, athlete Athlete) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Athlete, error)
}

// ActivityRepository captures persistence operations on activities.
type ActivityRepository interface {
	Create(ctx context.Context, activity Activity) error
	ListByAthlete(ctx context.Context, athleteID string) ([]Activity, error)
}

// RaceRepository captures persistence operations on races and their
// participation links.
type RaceRepository interface {
	CreateRace(ctx context.Context, race Race) error
	CreateParticipation(ctx context.Context, participation RaceParticipation) error
	ListByAthlete(ctx context.Context, athleteID string) ([]Race, error)
	ListParticipationsByAthlete(ctx context.Context, athleteID string) ([]ParticipationDetail, error)
	ListAllParticipations(ctx context.Context) ([]ParticipationDetail, error)
	ListWithParticipants(ctx context.Context) ([]RaceWithParticipants, error)
}

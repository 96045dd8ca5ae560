package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CreateRaceInput captures the payload for recording a race result.
type CreateRaceInput struct {
	RaceName       string
	Date           time.Time
	Distance       string
	FinishTime     string
	CompletionTime string
}

// ListRaces returns the races the athlete has a participation in,
// resolved through the join table.
func (s *Service) ListRaces(ctx context.Context, athleteID string) ([]Race, error) {
	return s.races.ListByAthlete(ctx, athleteID)
}

// CreateRace records a race and links the authenticated athlete to it.
// The race and its participation are written in two separate commits;
// a failure between them leaves the race without a participant.
func (s *Service) CreateRace(ctx context.Context, email string, input CreateRaceInput) (*Race, error) {
	athlete, err := s.athletes.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if athlete == nil {
		return nil, ErrAthleteNotFound
	}

	race := Race{
		ID:         uuid.NewString(),
		RaceName:   input.RaceName,
		Date:       input.Date,
		Distance:   input.Distance,
		FinishTime: input.FinishTime,
	}
	if err := s.races.CreateRace(ctx, race); err != nil {
		return nil, err
	}

	participation := RaceParticipation{
		ID:             uuid.NewString(),
		RaceID:         race.ID,
		AthleteID:      athlete.ID,
		CompletionTime: input.CompletionTime,
	}
	if err := s.races.CreateParticipation(ctx, participation); err != nil {
		return nil, err
	}

	return &race, nil
}

// ListParticipations returns the athlete's participation records with
// embedded race and athlete names.
func (s *Service) ListParticipations(ctx context.Context, athleteID string) ([]ParticipationDetail, error) {
	return s.races.ListParticipationsByAthlete(ctx, athleteID)
}

// ListAllParticipations returns every participation record without
// ownership scoping. Public variant of ListParticipations.
func (s *Service) ListAllParticipations(ctx context.Context) ([]ParticipationDetail, error) {
	return s.races.ListAllParticipations(ctx)
}

// ListRacesWithParticipants returns every race with the denormalized
// full names of its participants. Intended for public display.
func (s *Service) ListRacesWithParticipants(ctx context.Context) ([]RaceWithParticipants, error) {
	return s.races.ListWithParticipants(ctx)
}

// Package memory stores entities in memory for tests and local
// development. Cascade rules mirror the Postgres schema.
package memory

import (
	"context"
	"sync"

	"example.com/sweatjunkies/internal/domain"
)

// Store holds all entity slices behind one lock. Slices preserve
// insertion order, which stands in for the store-default ordering of
// the SQL repositories.
type Store struct {
	mu             sync.RWMutex
	athletes       []domain.Athlete
	activities     []domain.Activity
	races          []domain.Race
	participations []domain.RaceParticipation
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Athletes returns the athlete repository view of the store.
func (s *Store) Athletes() *AthleteRepository { return &AthleteRepository{store: s} }

// Activities returns the activity repository view of the store.
func (s *Store) Activities() *ActivityRepository { return &ActivityRepository{store: s} }

// Races returns the race repository view of the store.
func (s *Store) Races() *RaceRepository { return &RaceRepository{store: s} }

// AthleteRepository implements domain.AthleteRepository.
type AthleteRepository struct {
	store *Store
}

func (r *AthleteRepository) Create(ctx context.Context, athlete domain.Athlete) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.athletes = append(r.store.athletes, athlete)
	return nil
}

func (r *AthleteRepository) FindByEmail(ctx context.Context, email string) (*domain.Athlete, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, athlete := range r.store.athletes {
		if athlete.Email == email {
			found := athlete
			return &found, nil
		}
	}
	return nil, nil
}

func (r *AthleteRepository) FindByID(ctx context.Context, id string) (*domain.Athlete, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, athlete := range r.store.athletes {
		if athlete.ID == id {
			found := athlete
			return &found, nil
		}
	}
	return nil, nil
}

func (r *AthleteRepository) Update(ctx context.Context, athlete domain.Athlete) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.athletes {
		if r.store.athletes[i].ID == athlete.ID {
			r.store.athletes[i] = athlete
			return nil
		}
	}
	return nil
}

// Delete removes the athlete and cascades to owned activities and
// race participations, matching the SQL foreign keys.
func (r *AthleteRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	athletes := r.store.athletes[:0]
	for _, athlete := range r.store.athletes {
		if athlete.ID != id {
			athletes = append(athletes, athlete)
		}
	}
	r.store.athletes = athletes

	activities := r.store.activities[:0]
	for _, activity := range r.store.activities {
		if activity.AthleteID != id {
			activities = append(activities, activity)
		}
	}
	r.store.activities = activities

	participations := r.store.participations[:0]
	for _, participation := range r.store.participations {
		if participation.AthleteID != id {
			participations = append(participations, participation)
		}
	}
	r.store.participations = participations
	return nil
}

func (r *AthleteRepository) List(ctx context.Context) ([]domain.Athlete, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]domain.Athlete, len(r.store.athletes))
	copy(out, r.store.athletes)
	return out, nil
}

// ActivityRepository implements domain.ActivityRepository.
type ActivityRepository struct {
	store *Store
}

func (r *ActivityRepository) Create(ctx context.Context, activity domain.Activity) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.activities = append(r.store.activities, activity)
	return nil
}

func (r *ActivityRepository) ListByAthlete(ctx context.Context, athleteID string) ([]domain.Activity, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []domain.Activity
	for _, activity := range r.store.activities {
		if activity.AthleteID == athleteID {
			out = append(out, activity)
		}
	}
	return out, nil
}

// RaceRepository implements domain.RaceRepository.
type RaceRepository struct {
	store *Store
}

func (r *RaceRepository) CreateRace(ctx context.Context, race domain.Race) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.races = append(r.store.races, race)
	return nil
}

func (r *RaceRepository) CreateParticipation(ctx context.Context, participation domain.RaceParticipation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.participations = append(r.store.participations, participation)
	return nil
}

func (r *RaceRepository) ListByAthlete(ctx context.Context, athleteID string) ([]domain.Race, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []domain.Race
	for _, participation := range r.store.participations {
		if participation.AthleteID != athleteID {
			continue
		}
		for _, race := range r.store.races {
			if race.ID == participation.RaceID {
				out = append(out, race)
				break
			}
		}
	}
	return out, nil
}

func (r *RaceRepository) ListParticipationsByAthlete(ctx context.Context, athleteID string) ([]domain.ParticipationDetail, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []domain.ParticipationDetail
	for _, participation := range r.store.participations {
		if participation.AthleteID == athleteID {
			out = append(out, r.detail(participation))
		}
	}
	return out, nil
}

func (r *RaceRepository) ListAllParticipations(ctx context.Context) ([]domain.ParticipationDetail, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []domain.ParticipationDetail
	for _, participation := range r.store.participations {
		out = append(out, r.detail(participation))
	}
	return out, nil
}

func (r *RaceRepository) detail(participation domain.RaceParticipation) domain.ParticipationDetail {
	detail := domain.ParticipationDetail{CompletionTime: participation.CompletionTime}
	for _, race := range r.store.races {
		if race.ID == participation.RaceID {
			detail.RaceName = race.RaceName
			break
		}
	}
	for _, athlete := range r.store.athletes {
		if athlete.ID == participation.AthleteID {
			detail.AthleteName = athlete.FullName()
			break
		}
	}
	return detail
}

func (r *RaceRepository) ListWithParticipants(ctx context.Context) ([]domain.RaceWithParticipants, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]domain.RaceWithParticipants, 0, len(r.store.races))
	for _, race := range r.store.races {
		entry := domain.RaceWithParticipants{Race: race, Participants: []string{}}
		for _, participation := range r.store.participations {
			if participation.RaceID != race.ID {
				continue
			}
			for _, athlete := range r.store.athletes {
				if athlete.ID == participation.AthleteID {
					entry.Participants = append(entry.Participants, athlete.FullName())
					break
				}
			}
		}
		out = append(out, entry)
	}
	return out, nil
}

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/sweatjunkies/internal/domain"
)

// RaceRepository provides Postgres-backed persistence for races and
// their participation links.
type RaceRepository struct {
	pool *pgxpool.Pool
}

// NewRaceRepository constructs a RaceRepository.
func NewRaceRepository(pool *pgxpool.Pool) *RaceRepository {
	return &RaceRepository{pool: pool}
}

// CreateRace inserts a new race row.
func (r *RaceRepository) CreateRace(ctx context.Context, race domain.Race) error {
	const stmt = `INSERT INTO races (race_id, race_name, race_date, distance, finish_time)
        VALUES ($1,$2,$3,$4,$5)`
	_, err := r.pool.Exec(ctx, stmt,
		race.ID,
		race.RaceName,
		race.Date,
		race.Distance,
		nullIfEmpty(race.FinishTime),
	)
	return err
}

// CreateParticipation inserts a new participation row linking an
// athlete to a race.
func (r *RaceRepository) CreateParticipation(ctx context.Context, participation domain.RaceParticipation) error {
	const stmt = `INSERT INTO race_participations (participation_id, race_id, athlete_id, completion_time)
        VALUES ($1,$2,$3,$4)`
	_, err := r.pool.Exec(ctx, stmt,
		participation.ID,
		participation.RaceID,
		participation.AthleteID,
		nullIfEmpty(participation.CompletionTime),
	)
	return err
}

// ListByAthlete returns the races the athlete participates in,
// resolved through the join table.
func (r *RaceRepository) ListByAthlete(ctx context.Context, athleteID string) ([]domain.Race, error) {
	const query = `SELECT r.race_id, r.race_name, r.race_date, r.distance, r.finish_time
        FROM races r
        JOIN race_participations rp ON rp.race_id = r.race_id
        WHERE rp.athlete_id=$1`

	rows, err := r.pool.Query(ctx, query, athleteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var races []domain.Race
	for rows.Next() {
		var race domain.Race
		var finishTime *string
		if err := rows.Scan(&race.ID, &race.RaceName, &race.Date, &race.Distance, &finishTime); err != nil {
			return nil, err
		}
		race.FinishTime = orEmpty(finishTime)
		races = append(races, race)
	}
	return races, rows.Err()
}

const participationDetailQuery = `SELECT r.race_name,
        a.first_name || ' ' || a.last_name,
        COALESCE(rp.completion_time, '')
        FROM race_participations rp
        JOIN races r ON r.race_id = rp.race_id
        JOIN athletes a ON a.athlete_id = rp.athlete_id`

// ListParticipationsByAthlete returns the athlete's participation
// records with embedded race and athlete names.
func (r *RaceRepository) ListParticipationsByAthlete(ctx context.Context, athleteID string) ([]domain.ParticipationDetail, error) {
	return r.queryParticipations(ctx, participationDetailQuery+` WHERE rp.athlete_id=$1`, athleteID)
}

// ListAllParticipations returns every participation record with no
// ownership filter.
func (r *RaceRepository) ListAllParticipations(ctx context.Context) ([]domain.ParticipationDetail, error) {
	return r.queryParticipations(ctx, participationDetailQuery)
}

func (r *RaceRepository) queryParticipations(ctx context.Context, query string, args ...interface{}) ([]domain.ParticipationDetail, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []domain.ParticipationDetail
	for rows.Next() {
		var detail domain.ParticipationDetail
		if err := rows.Scan(&detail.RaceName, &detail.AthleteName, &detail.CompletionTime); err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, rows.Err()
}

// ListWithParticipants returns every race with the full names of its
// participants.
func (r *RaceRepository) ListWithParticipants(ctx context.Context) ([]domain.RaceWithParticipants, error) {
	const query = `SELECT r.race_id, r.race_name, r.race_date, r.distance, r.finish_time,
        a.first_name || ' ' || a.last_name
        FROM races r
        LEFT JOIN race_participations rp ON rp.race_id = r.race_id
        LEFT JOIN athletes a ON a.athlete_id = rp.athlete_id
        ORDER BY r.race_date, r.race_id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.RaceWithParticipants
	index := make(map[string]int)
	for rows.Next() {
		var race domain.Race
		var finishTime, participant *string
		if err := rows.Scan(&race.ID, &race.RaceName, &race.Date, &race.Distance, &finishTime, &participant); err != nil {
			return nil, err
		}
		race.FinishTime = orEmpty(finishTime)

		pos, seen := index[race.ID]
		if !seen {
			pos = len(results)
			index[race.ID] = pos
			results = append(results, domain.RaceWithParticipants{Race: race, Participants: []string{}})
		}
		if participant != nil {
			results[pos].Participants = append(results[pos].Participants, *participant)
		}
	}
	return results, rows.Err()
}

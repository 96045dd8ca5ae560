package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/sweatjunkies/internal/domain"
)

// ActivityRepository provides Postgres-backed persistence for
// activities.
type ActivityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository constructs an ActivityRepository.
func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

// Create inserts a new activity row.
func (r *ActivityRepository) Create(ctx context.Context, activity domain.Activity) error {
	const stmt = `INSERT INTO activities (activity_id, description, duration_min, activity_date, athlete_id)
        VALUES ($1,$2,$3,$4,$5)`
	_, err := r.pool.Exec(ctx, stmt,
		activity.ID,
		activity.Description,
		activity.DurationMin,
		activity.Date,
		activity.AthleteID,
	)
	return err
}

// ListByAthlete returns the athlete's activities in store-default
// order.
func (r *ActivityRepository) ListByAthlete(ctx context.Context, athleteID string) ([]domain.Activity, error) {
	const query = `SELECT activity_id, description, duration_min, activity_date, athlete_id
        FROM activities WHERE athlete_id=$1`

	rows, err := r.pool.Query(ctx, query, athleteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var activity domain.Activity
		if err := rows.Scan(&activity.ID, &activity.Description, &activity.DurationMin, &activity.Date, &activity.AthleteID); err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}
	return activities, rows.Err()
}

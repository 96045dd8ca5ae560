package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/sweatjunkies/internal/domain"
)

const athleteColumns = `athlete_id, first_name, last_name, email, password_hash, bio`

// AthleteRepository provides Postgres-backed persistence for athletes.
type AthleteRepository struct {
	pool *pgxpool.Pool
}

// NewAthleteRepository constructs an AthleteRepository.
func NewAthleteRepository(pool *pgxpool.Pool) *AthleteRepository {
	return &AthleteRepository{pool: pool}
}

// Create inserts a new athlete row.
func (r *AthleteRepository) Create(ctx context.Context, athlete domain.Athlete) error {
	const stmt = `INSERT INTO athletes (athlete_id, first_name, last_name, email, password_hash, bio)
        VALUES ($1,$2,$3,$4,$5,$6)`
	_, err := r.pool.Exec(ctx, stmt,
		athlete.ID,
		athlete.FirstName,
		athlete.LastName,
		athlete.Email,
		athlete.PasswordHash,
		athlete.Bio,
	)
	return err
}

// FindByEmail returns the athlete with the given email, or (nil, nil).
func (r *AthleteRepository) FindByEmail(ctx context.Context, email string) (*domain.Athlete, error) {
	const query = `SELECT ` + athleteColumns + ` FROM athletes WHERE email=$1`
	return r.findOne(ctx, query, email)
}

// FindByID returns the athlete with the given id, or (nil, nil).
func (r *AthleteRepository) FindByID(ctx context.Context, id string) (*domain.Athlete, error) {
	const query = `SELECT ` + athleteColumns + ` FROM athletes WHERE athlete_id=$1`
	return r.findOne(ctx, query, id)
}

func (r *AthleteRepository) findOne(ctx context.Context, query string, arg interface{}) (*domain.Athlete, error) {
	row := r.pool.QueryRow(ctx, query, arg)
	var athlete domain.Athlete
	if err := row.Scan(&athlete.ID, &athlete.FirstName, &athlete.LastName, &athlete.Email, &athlete.PasswordHash, &athlete.Bio); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &athlete, nil
}

// Update overwrites the mutable athlete columns.
func (r *AthleteRepository) Update(ctx context.Context, athlete domain.Athlete) error {
	const stmt = `UPDATE athletes SET first_name=$2, last_name=$3, email=$4, password_hash=$5, bio=$6
        WHERE athlete_id=$1`
	_, err := r.pool.Exec(ctx, stmt,
		athlete.ID,
		athlete.FirstName,
		athlete.LastName,
		athlete.Email,
		athlete.PasswordHash,
		athlete.Bio,
	)
	return err
}

// Delete removes the athlete row. Activities and race participations
// cascade via the schema's foreign keys.
func (r *AthleteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM athletes WHERE athlete_id=$1`, id)
	return err
}

// List returns every athlete.
func (r *AthleteRepository) List(ctx context.Context) ([]domain.Athlete, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+athleteColumns+` FROM athletes ORDER BY email`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var athletes []domain.Athlete
	for rows.Next() {
		var athlete domain.Athlete
		if err := rows.Scan(&athlete.ID, &athlete.FirstName, &athlete.LastName, &athlete.Email, &athlete.PasswordHash, &athlete.Bio); err != nil {
			return nil, err
		}
		athletes = append(athletes, athlete)
	}
	return athletes, rows.Err()
}

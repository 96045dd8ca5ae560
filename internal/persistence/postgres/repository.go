// Package postgres provides pgx-backed persistence for athletes,
// activities and races.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS athletes (
    athlete_id    TEXT PRIMARY KEY,
    first_name    TEXT NOT NULL,
    last_name     TEXT NOT NULL,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    bio           TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS activities (
    activity_id   TEXT PRIMARY KEY,
    description   TEXT NOT NULL,
    duration_min  INTEGER NOT NULL,
    activity_date DATE NOT NULL,
    athlete_id    TEXT NOT NULL REFERENCES athletes(athlete_id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS races (
    race_id     TEXT PRIMARY KEY,
    race_name   TEXT NOT NULL,
    race_date   DATE NOT NULL,
    distance    TEXT NOT NULL,
    finish_time TEXT
);

CREATE TABLE IF NOT EXISTS race_participations (
    participation_id TEXT PRIMARY KEY,
    race_id          TEXT NOT NULL REFERENCES races(race_id) ON DELETE CASCADE,
    athlete_id       TEXT NOT NULL REFERENCES athletes(athlete_id) ON DELETE CASCADE,
    completion_time  TEXT
);
`

// EnsureSchema creates the tables when they do not exist yet.
// Migration tooling is deliberately not part of this service.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}

func nullIfEmpty(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}

func orEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

package domain

import "time"

// Athlete is a registered account. PasswordHash is never serialized to
// clients; the api layer builds response views from these structs.
type Athlete struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Bio          string
}

// FullName joins first and last name for participant listings.
func (a Athlete) FullName() string {
	return a.FirstName + " " + a.LastName
}

// Activity is a logged exercise session owned by one athlete.
// Immutable after creation.
type Activity struct {
	ID          string
	Description string
	DurationMin int
	Date        time.Time
	AthleteID   string
}

// Race is an event with a date and distance, independent of any athlete.
// FinishTime is the denormalized "official" time, free-form.
type Race struct {
	ID         string
	RaceName   string
	Date       time.Time
	Distance   string
	FinishTime string
}

// RaceParticipation links one athlete to one race with a personal
// completion time. Deleting either parent removes the row.
type RaceParticipation struct {
	ID             string
	RaceID         string
	AthleteID      string
	CompletionTime string
}

// ParticipationDetail is a participation joined with its parents for
// display: race name plus athlete full name.
type ParticipationDetail struct {
	RaceName       string
	AthleteName    string
	CompletionTime string
}

// RaceWithParticipants is a race with the denormalized full names of
// every athlete linked to it.
type RaceWithParticipants struct {
	Race
	Participants []string
}

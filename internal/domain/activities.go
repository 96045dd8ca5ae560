package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CreateActivityInput captures the payload from the API layer. Date is
// already parsed; the handler rejects anything that is not YYYY-MM-DD.
type CreateActivityInput struct {
	Description string
	DurationMin int
	Date        time.Time
}

// ListActivities returns all activities owned by the authenticated
// athlete in store-default order.
func (s *Service) ListActivities(ctx context.Context, email string) ([]Activity, error) {
	athlete, err := s.athletes.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if athlete == nil {
		return nil, ErrAthleteNotFound
	}
	return s.activities.ListByAthlete(ctx, athlete.ID)
}

// CreateActivity persists a new activity owned by the authenticated
// athlete.
func (s *Service) CreateActivity(ctx context.Context, email string, input CreateActivityInput) (*Activity, error) {
	athlete, err := s.athletes.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if athlete == nil {
		return nil, ErrAthleteNotFound
	}

	activity := Activity{
		ID:          uuid.NewString(),
		Description: input.Description,
		DurationMin: input.DurationMin,
		Date:        input.Date,
		AthleteID:   athlete.ID,
	}
	if err := s.activities.Create(ctx, activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

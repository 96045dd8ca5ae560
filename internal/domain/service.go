// Package domain defines the business logic for the fitness backend.
package domain

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// PasswordHasher one-way hashes and verifies athlete passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// ResetTokenIssuer issues and verifies purpose-scoped password reset
// tokens. Verify returns the email the token was issued for.
type ResetTokenIssuer interface {
	Issue(email string) (string, error)
	Verify(token string) (string, error)
}

// Mailer sends transactional email. Failures are logged by the service
// and never surfaced to callers.
type Mailer interface {
	SendWelcome(ctx context.Context, email string) error
	SendPasswordReset(ctx context.Context, email, link string) error
}

// Service orchestrates athlete, activity and race workflows.
type Service struct {
	athletes   AthleteRepository
	activities ActivityRepository
	races      RaceRepository

	hasher      PasswordHasher
	resetTokens ResetTokenIssuer
	mailer      Mailer
	resetURL    string
}

// NewService constructs a Service. resetURL is the frontend base URL
// embedded into password reset links.
func NewService(athletes AthleteRepository, activities ActivityRepository, races RaceRepository, hasher PasswordHasher, resetTokens ResetTokenIssuer, mailer Mailer, resetURL string) *Service {
	return &Service{
		athletes:    athletes,
		activities:  activities,
		races:       races,
		hasher:      hasher,
		resetTokens: resetTokens,
		mailer:      mailer,
		resetURL:    strings.TrimRight(resetURL, "/"),
	}
}

// RegisterInput captures the registration payload.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Bio       string
}

// Register creates a new athlete account. The welcome email is
// best-effort: a mailer failure is logged and does not abort
// registration.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*Athlete, error) {
	if input.Email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" {
		return nil, ErrMissingFields
	}

	athlete, err := s.createAthlete(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := s.mailer.SendWelcome(ctx, athlete.Email); err != nil {
		log.Printf("welcome email to %s failed: %v", athlete.Email, err)
	}

	return athlete, nil
}

// CreateAthlete creates an athlete through the public collection
// endpoint. Unlike Register it accepts a bio and sends no email.
func (s *Service) CreateAthlete(ctx context.Context, input RegisterInput) (*Athlete, error) {
	return s.createAthlete(ctx, input)
}

func (s *Service) createAthlete(ctx context.Context, input RegisterInput) (*Athlete, error) {
	existing, err := s.athletes.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	athlete := Athlete{
		ID:           uuid.NewString(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hash,
		Bio:          input.Bio,
	}
	if err := s.athletes.Create(ctx, athlete); err != nil {
		return nil, err
	}
	return &athlete, nil
}

// Authenticate verifies credentials. The two failure modes stay
// distinct: unknown email and wrong password produce different errors,
// matching the client's messaging.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*Athlete, error) {
	athlete, err := s.athletes.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if athlete == nil {
		return nil, ErrEmailNotFound
	}
	if !s.hasher.Verify(athlete.PasswordHash, password) {
		return nil, ErrIncorrectPassword
	}
	return athlete, nil
}

// RequestPasswordReset issues a reset token for a known email and
// mails the reset link. The mailer outcome is not surfaced.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	athlete, err := s.athletes.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if athlete == nil {
		return ErrEmailNotFound
	}

	token, err := s.resetTokens.Issue(athlete.Email)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.resetURL, url.QueryEscape(token))
	if err := s.mailer.SendPasswordReset(ctx, athlete.Email, link); err != nil {
		log.Printf("password reset email to %s failed: %v", athlete.Email, err)
	}
	return nil
}

// ResetPassword verifies the reset token and persists a new password
// hash for the decoded email.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	email, err := s.resetTokens.Verify(token)
	if err != nil {
		return ErrInvalidResetToken
	}

	athlete, err := s.athletes.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if athlete == nil {
		return ErrAthleteNotFound
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	athlete.PasswordHash = hash
	return s.athletes.Update(ctx, *athlete)
}

// GetProfile fetches the athlete for the authenticated email. Returns
// ErrAthleteNotFound when the account was deleted after token issuance.
func (s *Service) GetProfile(ctx context.Context, email string) (*Athlete, error) {
	athlete, err := s.athletes.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if athlete == nil {
		return nil, ErrAthleteNotFound
	}
	return athlete, nil
}

// UpdateProfileInput carries the mutable profile fields. Nil means
// "leave unchanged". Only first name and email are mutable here; no
// uniqueness re-check is performed on email change.
type UpdateProfileInput struct {
	FirstName *string
	Email     *string
}

// UpdateProfile applies a partial update to the authenticated profile.
func (s *Service) UpdateProfile(ctx context.Context, email string, input UpdateProfileInput) (*Athlete, error) {
	athlete, err := s.athletes.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if athlete == nil {
		return nil, ErrAthleteNotFound
	}

	if input.FirstName != nil {
		athlete.FirstName = *input.FirstName
	}
	if input.Email != nil {
		athlete.Email = *input.Email
	}

	if err := s.athletes.Update(ctx, *athlete); err != nil {
		return nil, err
	}
	return athlete, nil
}

// DeleteProfile removes the athlete row. Owned activities and race
// participations cascade at the store level.
func (s *Service) DeleteProfile(ctx context.Context, email string) error {
	athlete, err := s.athletes.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if athlete == nil {
		return ErrAthleteNotFound
	}
	return s.athletes.Delete(ctx, athlete.ID)
}

// ListAthletes returns every registered athlete.
func (s *Service) ListAthletes(ctx context.Context) ([]Athlete, error) {
	return s.athletes.List(ctx)
}

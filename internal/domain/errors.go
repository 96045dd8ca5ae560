package domain

import "errors"

var (
	// ErrMissingFields indicates a required registration field was absent.
	ErrMissingFields = errors.New("missing required fields")
	// ErrEmailExists indicates the email is already registered.
	ErrEmailExists = errors.New("email already exists")
	// ErrEmailNotFound indicates no athlete matches the email.
	ErrEmailNotFound = errors.New("email not found")
	// ErrIncorrectPassword indicates the password hash did not verify.
	ErrIncorrectPassword = errors.New("incorrect password")
	// ErrAthleteNotFound is returned when an athlete cannot be located.
	ErrAthleteNotFound = errors.New("athlete not found")
	// ErrInvalidResetToken covers bad signature, wrong purpose and expiry.
	ErrInvalidResetToken = errors.New("reset token invalid or expired")
)

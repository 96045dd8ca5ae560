// Package auth implements session and password-reset token handling
// plus password hashing for the fitness backend.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds signing parameters shared by the token types.
type Config struct {
	Secret     string
	Issuer     string
	ResetSalt  string
	SessionTTL time.Duration
	ResetTTL   time.Duration
}

// Claims represents the session payload extracted from a JWT.
type Claims struct {
	Email     string
	AthleteID string
	ExpiresAt time.Time
}

// ErrMissingToken is returned when the Authorization header is absent.
var ErrMissingToken = errors.New("missing bearer token")

// ErrInvalidToken wraps parsing/validation errors.
var ErrInvalidToken = errors.New("invalid bearer token")

const resetPurpose = "password-reset"

// Signer issues and verifies HS256 session tokens embedding the
// athlete's email and id.
type Signer struct {
	cfg Config
}

// NewSigner constructs a Signer.
func NewSigner(cfg Config) *Signer {
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	return &Signer{cfg: cfg}
}

// IssueSession mints a session token for a successfully authenticated
// athlete.
func (s *Signer) IssueSession(email, athleteID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": email,
		"id":  athleteID,
		"iss": s.cfg.Issuer,
		"iat": now.Unix(),
		"exp": now.Add(s.cfg.SessionTTL).Unix(),
	})
	return token.SignedString([]byte(s.cfg.Secret))
}

// Parse validates a session JWT and returns normalized claims.
func (s *Signer) Parse(token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithIssuer(s.cfg.Issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	email, _ := claims["sub"].(string)
	athleteID, _ := claims["id"].(string)
	if email == "" || athleteID == "" {
		return nil, ErrInvalidToken
	}
	if purpose, _ := claims["purpose"].(string); purpose != "" {
		// Reset tokens must never pass as session credentials.
		return nil, ErrInvalidToken
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrInvalidToken
	}

	return &Claims{
		Email:     email,
		AthleteID: athleteID,
		ExpiresAt: exp.Time,
	}, nil
}

// ResetSigner issues and verifies password-reset tokens. Tokens are
// signed with the secret concatenated with a distinct salt so a
// session token can never be replayed as a reset credential.
type ResetSigner struct {
	cfg Config
}

// NewResetSigner constructs a ResetSigner.
func NewResetSigner(cfg Config) *ResetSigner {
	if cfg.ResetTTL == 0 {
		cfg.ResetTTL = time.Hour
	}
	return &ResetSigner{cfg: cfg}
}

func (s *ResetSigner) key() []byte {
	return []byte(s.cfg.Secret + s.cfg.ResetSalt)
}

// Issue mints a purpose-scoped reset token for the email.
func (s *ResetSigner) Issue(email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     email,
		"purpose": resetPurpose,
		"iss":     s.cfg.Issuer,
		"iat":     now.Unix(),
		"exp":     now.Add(s.cfg.ResetTTL).Unix(),
	})
	return token.SignedString(s.key())
}

// Verify validates signature, purpose and expiry and returns the email
// the token was issued for.
func (s *ResetSigner) Verify(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.key(), nil
	}, jwt.WithIssuer(s.cfg.Issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return "", ErrInvalidToken
	}
	if purpose, _ := claims["purpose"].(string); purpose != resetPurpose {
		return "", ErrInvalidToken
	}
	email, _ := claims["sub"].(string)
	if email == "" {
		return "", ErrInvalidToken
	}
	return email, nil
}

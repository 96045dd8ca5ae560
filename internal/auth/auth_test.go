package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Secret:     "test-secret",
		Issuer:     "sweatjunkies.test",
		ResetSalt:  "password-reset-salt",
		SessionTTL: 24 * time.Hour,
		ResetTTL:   time.Hour,
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	signer := NewSigner(testConfig())

	token, err := signer.IssueSession("john@example.com", "athlete-1")
	require.NoError(t, err)

	claims, err := signer.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "john@example.com", claims.Email)
	require.Equal(t, "athlete-1", claims.AthleteID)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt, time.Minute)
}

func TestSessionParseRejectsGarbage(t *testing.T) {
	signer := NewSigner(testConfig())

	_, err := signer.Parse("")
	require.ErrorIs(t, err, ErrMissingToken)

	_, err = signer.Parse("not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionParseRejectsResetToken(t *testing.T) {
	cfg := testConfig()
	reset, err := NewResetSigner(cfg).Issue("john@example.com")
	require.NoError(t, err)

	_, err = NewSigner(cfg).Parse(reset)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetTokenRoundTrip(t *testing.T) {
	signer := NewResetSigner(testConfig())

	token, err := signer.Issue("jane@example.com")
	require.NoError(t, err)

	email, err := signer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "jane@example.com", email)
}

func TestResetVerifyRejectsSessionToken(t *testing.T) {
	cfg := testConfig()
	session, err := NewSigner(cfg).IssueSession("jane@example.com", "athlete-2")
	require.NoError(t, err)

	_, err = NewResetSigner(cfg).Verify(session)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetVerifyRejectsExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.ResetTTL = -time.Minute

	token, err := NewResetSigner(cfg).Issue("jane@example.com")
	require.NoError(t, err)

	_, err = NewResetSigner(testConfig()).Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetVerifyRejectsWrongSalt(t *testing.T) {
	cfg := testConfig()
	token, err := NewResetSigner(cfg).Issue("jane@example.com")
	require.NoError(t, err)

	other := cfg
	other.ResetSalt = "different-salt"
	_, err = NewResetSigner(other).Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestMiddlewareAttachesClaims(t *testing.T) {
	cfg := testConfig()
	signer := NewSigner(cfg)
	token, err := signer.IssueSession("john@example.com", "athlete-1")
	require.NoError(t, err)

	var seen *Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = FromContext(r.Context())
	})

	mw := NewMiddleware(signer, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/activities", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	mw.Wrap(next).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, seen)
	require.Equal(t, "john@example.com", seen.Email)
}

func TestMiddlewareRejectsMissingToken(t *testing.T) {
	mw := NewMiddleware(NewSigner(testConfig()), nil)
	req := httptest.NewRequest(http.MethodGet, "/api/activities", nil)
	rr := httptest.NewRecorder()
	mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMiddlewareSkipperBypassesAuth(t *testing.T) {
	mw := NewMiddleware(NewSigner(testConfig()), func(r *http.Request) bool {
		return r.URL.Path == "/api/register"
	})
	req := httptest.NewRequest(http.MethodPost, "/api/register", nil)
	rr := httptest.NewRecorder()
	mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := NewBcryptHasher(4)

	hash, err := hasher.Hash("password123")
	require.NoError(t, err)
	require.NotEqual(t, "password123", hash)

	require.True(t, hasher.Verify(hash, "password123"))
	require.False(t, hasher.Verify(hash, "password124"))
}

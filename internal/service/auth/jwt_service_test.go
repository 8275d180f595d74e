package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davenall/pageforge/internal/config"
)

const testSecret = "thisisasecretkeythatis32charslong!!"

// mintToken creates a signed HS256 token for tests.
func mintToken(t *testing.T, secret string, subject string, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newTestService(t *testing.T) JWTService {
	t.Helper()

	svc, err := NewJWTService(config.AuthConfig{JWTSecret: testSecret})
	require.NoError(t, err)
	return svc
}

func TestNewJWTServiceRejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{JWTSecret: "short"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 characters")
}

func TestValidateTokenSuccess(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	token := mintToken(t, testSecret, "publisher-service", time.Now().Add(time.Hour))

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "publisher-service", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
}

func TestValidateTokenExpired(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	token := mintToken(t, testSecret, "publisher-service", time.Now().Add(-time.Hour))

	_, err := svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	token := mintToken(t, "anentirelydifferentsecretthatis32ch", "publisher-service", time.Now().Add(time.Hour))

	_, err := svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	_, err := svc.ValidateToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// Package auth validates the bearer tokens protecting the generation
// endpoint. Tokens are minted by the surrounding platform; this service
// only verifies signatures and expiry.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/davenall/pageforge/internal/config"
)

// JWTService defines the token validation operations the API layer needs.
type JWTService interface {
	// ValidateToken validates the provided token string and extracts
	// the claims. Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims carries the token fields the application cares about.
type Claims struct {
	// Subject identifies the caller the token was issued for.
	Subject string

	// ExpiresAt is the token expiry.
	ExpiresAt time.Time
}

// hmacJWTService implements JWTService using HMAC-SHA256 verification.
type hmacJWTService struct {
	signingKey []byte
	timeFunc   func() time.Time
	clockSkew  time.Duration
}

// Ensure hmacJWTService implements the JWTService interface.
var _ JWTService = (*hmacJWTService)(nil)

// NewJWTService creates a JWT validation service from the auth configuration.
func NewJWTService(cfg config.AuthConfig) (JWTService, error) {
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}

	return &hmacJWTService{
		signingKey: []byte(cfg.JWTSecret),
		timeFunc:   time.Now,
		// Tolerate minor clock drift between token issuer and this service.
		clockSkew: 2 * time.Minute,
	}, nil
}

// ValidateToken implements JWTService.ValidateToken.
func (s *hmacJWTService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	now := s.timeFunc()

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(s.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		parserOpts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	out := &Claims{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

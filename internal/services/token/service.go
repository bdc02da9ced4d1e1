package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mrodgar/gymrat/internal/dependencies/clock"
)

// Errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrKeyTooShort  = errors.New("signing key must be at least 32 bytes")
)

// MinKeyBytes is the minimum HMAC-SHA-256 signing key length. A shorter
// key is a configuration error at startup, not a per-request failure.
const MinKeyBytes = 32

// DefaultTTL is the token lifetime used when none is configured
const DefaultTTL = 24 * time.Hour

// Service issues and validates signed, time-limited identity tokens.
// Tokens carry only subject, issued-at and expiry; the caller's role is
// never embedded and must be resolved from the user record on every
// request.
type Service struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// New creates a token service. It fails if the signing key is shorter
// than MinKeyBytes.
func New(secret []byte, ttl time.Duration, clk clock.Clock) (*Service, error) {
	if len(secret) < MinKeyBytes {
		return nil, ErrKeyTooShort
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		secret: secret,
		ttl:    ttl,
		clock:  clk,
	}, nil
}

// Issue produces an HS256-signed token with subject=username
func (s *Service) Issue(username string) (string, error) {
	now := s.clock.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})
	return t.SignedString(s.secret)
}

// Validate verifies signature and expiry and returns the subject
func (s *Service) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}
	if !t.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

// TTL returns the configured token lifetime
func (s *Service) TTL() time.Duration {
	return s.ttl
}

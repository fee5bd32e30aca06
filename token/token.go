// Package token issues and verifies the signed identity assertions carried
// in the session cookie.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	// CookieName is the httpOnly cookie the token travels in.
	CookieName = "token"

	DefaultExpiry = 10 * time.Hour

	issuer = "car-rental"
)

var (
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrMissingIdentity = errors.New("identity email is required")
)

// Claims is the payload of an identity assertion.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

type Service struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewService(secret string, expiry time.Duration) *Service {
	if expiry <= 0 {
		expiry = DefaultExpiry
	}
	return &Service{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

// WithClock replaces the issuance clock. Verification always runs against
// wall time.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) SigningKey() []byte {
	return s.secret
}

func (s *Service) Expiry() time.Duration {
	return s.expiry
}

// Issue signs a token for email and returns it together with its expiry.
func (s *Service) Issue(email string) (string, time.Time, error) {
	if email == "" {
		return "", time.Time{}, ErrMissingIdentity
	}

	now := s.now()
	expiresAt := now.Add(s.expiry)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify parses raw and returns its claims if the signature, algorithm,
// issuer and expiry all check out.
func (s *Service) Verify(raw string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, s.keyFunc)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if err := s.Validate(claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// Validate checks the claims that signature verification does not cover.
func (s *Service) Validate(claims *Claims) error {
	if !claims.VerifyIssuer(issuer, true) || claims.Email == "" {
		return ErrInvalidToken
	}
	return nil
}

func (s *Service) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrInvalidToken
	}
	return s.secret, nil
}

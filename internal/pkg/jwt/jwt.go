package jwt

import (
	"errors"
	"time"

	"stable-booking/internal/domain/user"
	"stable-booking/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const defaultLeeway = 30 * time.Second

// Claims issued by the auth provider. Providers that only fill "sub" are
// accepted as well.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// Subject prefers the explicit user_id claim over "sub".
func (c *Claims) Subject() (uuid.UUID, error) {
	if c.UserID != uuid.Nil {
		return c.UserID, nil
	}
	id, err := uuid.Parse(c.RegisteredClaims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}

type Option func(*Service)

// WithLeeway sets the clock skew tolerated on exp, nbf and iat.
func WithLeeway(d time.Duration) Option {
	return func(s *Service) { s.leeway = d }
}

func WithClock(c clock.Clock) Option {
	return func(s *Service) { s.clock = c }
}

// Service verifies HS256 tokens signed with a shared secret.
type Service struct {
	secret []byte
	ttl    time.Duration
	leeway time.Duration
	clock  clock.Clock
}

func NewService(secret string, ttl time.Duration, opts ...Option) *Service {
	s := &Service{
		secret: []byte(secret),
		ttl:    ttl,
		leeway: defaultLeeway,
		clock:  clock.System(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateToken signs a token shaped like the provider's. Only tests and
// local tooling mint tokens.
func (s *Service) GenerateToken(userID uuid.UUID, role user.Role) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		UserID: userID,
		Role:   role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) ValidateToken(raw string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, s.key,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(s.leeway),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	switch {
	case err == nil:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	default:
		return nil, ErrInvalidToken
	}
}

func (s *Service) key(*jwt.Token) (any, error) {
	return s.secret, nil
}

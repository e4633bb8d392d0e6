package usecase

import (
	"fmt"

	"stable-booking/internal/domain/user"
	"stable-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator resolves a bearer token to the caller's id and role.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type jwtTokenValidator struct {
	tokens *jwt.Service
}

func NewTokenValidator(tokens *jwt.Service) TokenValidator {
	return &jwtTokenValidator{tokens: tokens}
}

// ValidateToken rejects tokens whose role claim is not one we know, so a
// provider-side typo never reaches a role check as an empty role.
func (v *jwtTokenValidator) ValidateToken(raw string) (uuid.UUID, user.Role, error) {
	claims, err := v.tokens.ValidateToken(raw)
	if err != nil {
		return uuid.Nil, "", err
	}
	id, err := claims.Subject()
	if err != nil {
		return uuid.Nil, "", err
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: unknown role %q", jwt.ErrInvalidToken, claims.Role)
	}
	return id, role, nil
}

//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"stable-booking/internal/domain/user"
	"stable-booking/internal/pkg/jwt"
	"stable-booking/internal/usecase"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	const secret = "validator-secret"
	svc := jwt.NewService(secret, time.Hour)
	validator := usecase.NewTokenValidator(svc)
	userID := uuid.New()

	t.Run("returns id and role", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		id, role, err := validator.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, userID, id)
		assert.Equal(t, user.RoleAdmin, role)
	})

	t.Run("unknown role is an invalid token", func(t *testing.T) {
		claims := jwt.Claims{
			UserID: userID,
			Role:   "groom",
			RegisteredClaims: gojwt.RegisteredClaims{
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage is an invalid token", func(t *testing.T) {
		_, _, err := validator.ValidateToken("not-a-jwt")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

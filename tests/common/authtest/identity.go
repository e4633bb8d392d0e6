//go:build unit || e2e

package authtest

import (
	"testing"

	"stable-booking/internal/domain/user"
	"stable-booking/internal/pkg/config"
	"stable-booking/tests/common/dbtest"

	"github.com/google/uuid"
)

// Identity is a persisted user together with a bearer token for them.
type Identity struct {
	ID    uuid.UUID
	Token string
}

func CreateWithToken(t *testing.T, db dbtest.DBLike, cfg config.JWTConfig, email, name string, role user.Role) Identity {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, email, name, string(role))
	return Identity{ID: id, Token: NewJWTHelper(cfg).GenerateToken(t, id, role)}
}

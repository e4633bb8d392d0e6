//go:build unit || e2e

package builder

import (
	"stable-booking/internal/domain/user"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID         uuid.UUID
	Email      string
	Name       string
	Role       string
	RankPoints int
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:         uuid.New(),
		Email:      "rider@example.com",
		Name:       "Test Rider",
		Role:       "rider",
		RankPoints: 1000,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.Name, role), nil
}

// BuildRider rebuilds a rider as loaded for scoring.
func (u *UserBuilder) BuildRider() (*user.User, error) {
	return user.ReconstructRider(u.ID, u.Name, u.RankPoints)
}

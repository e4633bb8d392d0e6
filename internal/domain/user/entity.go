package user

import (
	"github.com/google/uuid"
)

// User is an account issued by the external auth provider. Riders carry rank
// points; the other roles ignore them.
type User struct {
	id         uuid.UUID
	name       string
	email      Email
	role       Role
	rankPoints RankPoints
}

func NewUser(email Email, name string, role Role) *User {
	return &User{
		id:         uuid.New(),
		name:       name,
		email:      email,
		role:       role,
		rankPoints: RankPoints{value: 1000},
	}
}

func ReconstructRider(id uuid.UUID, name string, points int) (*User, error) {
	rp, err := NewRankPoints(points)
	if err != nil {
		return nil, err
	}
	return &User{id: id, name: name, role: RoleRider, rankPoints: rp}, nil
}

// SetRankPoints replaces a rider's points with a recalculated total.
func (u *User) SetRankPoints(points int) error {
	if u.role != RoleRider {
		return ErrNotRider
	}
	rp, err := NewRankPoints(points)
	if err != nil {
		return err
	}
	u.rankPoints = rp
	return nil
}

func (u *User) ID() uuid.UUID          { return u.id }
func (u *User) Name() string           { return u.name }
func (u *User) Email() Email           { return u.email }
func (u *User) Role() Role             { return u.role }
func (u *User) RankPoints() RankPoints { return u.rankPoints }

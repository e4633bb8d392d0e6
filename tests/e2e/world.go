//go:build e2e

package e2e

import (
	"time"

	"stable-booking/internal/domain/user"
	"stable-booking/tests/common/authtest"
	"stable-booking/tests/common/dbtest"

	"github.com/google/uuid"
)

// World is the minimal marketplace most flows start from: one stable with
// one active horse, its owner, a rider and an admin.
type World struct {
	Owner    authtest.Identity
	Rider    authtest.Identity
	Admin    authtest.Identity
	StableID uuid.UUID
	HorseID  uuid.UUID
}

const HorsePriceCents = 6000

func (s *SharedSuite) SeedWorld() World {
	t := s.T()
	w := World{
		Owner: authtest.CreateWithToken(t, s.DB, s.Config.JWT, "owner@example.com", "Olive Owner", user.RoleStableOwner),
		Rider: authtest.CreateWithToken(t, s.DB, s.Config.JWT, "rider@example.com", "Remy Rider", user.RoleRider),
		Admin: authtest.CreateWithToken(t, s.DB, s.Config.JWT, "admin@example.com", "Ada Admin", user.RoleAdmin),
	}
	w.StableID = dbtest.CreateTestStable(t, s.DB, dbtest.StableFixture{
		OwnerID:  w.Owner.ID,
		Name:     "Willow Creek",
		Location: "Hakone",
	})
	w.HorseID = dbtest.CreateTestHorse(t, s.DB, dbtest.HorseFixture{
		StableID:          w.StableID,
		Name:              "Biscuit",
		PricePerHourCents: HorsePriceCents,
	})
	return w
}

func (s *SharedSuite) NewRider(email, name string) authtest.Identity {
	return authtest.CreateWithToken(s.T(), s.DB, s.Config.JWT, email, name, user.RoleRider)
}

func (s *SharedSuite) NewOwner(email, name string) authtest.Identity {
	return authtest.CreateWithToken(s.T(), s.DB, s.Config.JWT, email, name, user.RoleStableOwner)
}

func (s *SharedSuite) Location() *time.Location {
	return s.Config.Slot.Location()
}

// At returns hour:00 local time the given number of days from today.
func (s *SharedSuite) At(days, hour int) time.Time {
	loc := s.Location()
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day()+days, hour, 0, 0, 0, loc)
}

func DateOf(t time.Time) string {
	return t.Format(time.DateOnly)
}

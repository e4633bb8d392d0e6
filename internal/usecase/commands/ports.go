package commands

import (
	"log/slog"
	"time"

	"stable-booking/internal/domain/slot"
	"stable-booking/internal/infra"
	"stable-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// SlotSettings carries the service-wide slot calendar.
type SlotSettings struct {
	BasePolicy slot.Policy
	Location   *time.Location
	WindowDays int
}

// Actor is the authenticated caller of a command.
type Actor struct {
	ID   uuid.UUID
	Role string
}

const (
	RoleRider       = "rider"
	RoleStableOwner = "stable_owner"
	RoleAdmin       = "admin"
)

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func (s SlotSettings) policyFor(st *shared.StableSnapshot) slot.Policy {
	p, err := slot.ParsePolicy(st.SlotPolicy, s.BasePolicy)
	if err != nil {
		slog.Warn("ignoring invalid stable slot policy",
			"stable_id", st.ID.String(),
			"error", err.Error())
		return s.BasePolicy
	}
	return p
}

// notFoundAs replaces a repository NOT_FOUND with the given use-case error.
func notFoundAs(err error, target error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return target
	}
	return err
}

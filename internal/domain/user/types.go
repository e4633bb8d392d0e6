package user

type Role string

const (
	RoleRider       Role = "rider"
	RoleStableOwner Role = "stable_owner"
	RoleAdmin       Role = "admin"
)

func NewRole(s string) (Role, error) {
	r := Role(s)
	switch r {
	case RoleRider, RoleStableOwner, RoleAdmin:
		return r, nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

// In reports whether r is one of roles.
func (r Role) In(roles ...Role) bool {
	for _, x := range roles {
		if r == x {
			return true
		}
	}
	return false
}

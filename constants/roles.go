package constants

import "venue-booking/models/user"

// Role groups used by route gates. Roles are a closed enumeration; access is
// decided by membership here, never by comparing role strings in handlers.
var (
	// AdminRoles may manage bookings, venues and customers.
	AdminRoles = []user.Role{
		user.RoleAdmin,
		user.RoleAdministrator,
	}

	// AllRoles is every authenticated account.
	AllRoles = []user.Role{
		user.RoleUser,
		user.RoleAdmin,
		user.RoleAdministrator,
	}
)

// HasRole reports whether role is a member of the given group.
func HasRole(role user.Role, group []user.Role) bool {
	for _, r := range group {
		if r == role {
			return true
		}
	}
	return false
}

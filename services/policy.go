package services

import (
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/entity"
)

// CanAccessCountry is the residency rule: an admin may access any country's
// data, everyone else only their own country's. The admin bypass lives here
// and only here; the "ALL" sentinel stored on the admin row is never compared.
func CanAccessCountry(u *entity.User, country string) bool {
	if u.Role == entity.RoleAdmin {
		return true
	}
	return u.Country == country
}

// RoleAllowed is the role gate: true when the user's role is in the allowed
// set. An empty set means the operation is open to any authenticated user.
func RoleAllowed(u *entity.User, roles ...entity.Role) bool {
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

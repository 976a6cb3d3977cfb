package domain

import "slices"

// Principal is the authenticated caller of a request, as established by the
// bearer-token middleware.
type Principal struct {
	UserID string
	Email  string
	Roles  []string
}

// HasAnyRole reports whether the principal holds at least one of roles.
func (p Principal) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if slices.Contains(p.Roles, r) {
			return true
		}
	}
	return false
}

// Package domain contains the core data types for the WanderWise backend.
// This package has no dependencies on other internal packages and is imported
// by every other internal package (repo, service, handler).
package domain

import (
	"slices"
	"time"
)

// Role tags a user may hold. A user can hold several at once.
const (
	RoleAdmin       = "admin"
	RoleTravelAgent = "travelAgent"
	RoleEditor      = "editor"
	RoleTraveler    = "traveler"
)

// KnownRoles lists every role the backend accepts on write.
var KnownRoles = []string{RoleAdmin, RoleTravelAgent, RoleEditor, RoleTraveler}

// Profile is the open, semi-structured bag of contact attributes stored with
// a user (phone, notes, address, company, position, ...). There is no fixed
// schema; writes merge key by key.
type Profile map[string]any

// Merge returns a new Profile holding p's keys overlaid by over's keys.
// Neither input is modified. A nil result is never returned.
func (p Profile) Merge(over Profile) Profile {
	out := make(Profile, len(p)+len(over))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// String returns the value stored under key when it is a non-empty string.
func (p Profile) String(key string) string {
	if s, ok := p[key].(string); ok {
		return s
	}
	return ""
}

// User represents any account in the system: admin, travel agent, editor or
// traveler. ID is immutable once assigned. Email is the secondary lookup key;
// its uniqueness is enforced by the database, not by this package.
//
// TravelAgentID is the ownership reference of a traveler. nil means the
// traveler is unowned and can be claimed by an agent.
type User struct {
	ID                string
	Email             string
	Name              string
	PhotoURL          *string
	Roles             []string
	IsActive          bool
	Profile           Profile
	AssignedTravelers []string // legacy, not authoritative
	TravelAgentID     *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	LastLoginAt       *time.Time
}

// HasRole reports whether u holds role.
func (u User) HasRole(role string) bool {
	return slices.Contains(u.Roles, role)
}

// OwnedBy reports whether u's owning agent is agentID.
func (u User) OwnedBy(agentID string) bool {
	return u.TravelAgentID != nil && *u.TravelAgentID == agentID
}

// IsKnownRole reports whether role is one of KnownRoles.
func IsKnownRole(role string) bool {
	return slices.Contains(KnownRoles, role)
}

// NewUser carries the fields needed to create a non-traveler account
// (admin, travel agent, editor) together with its login credentials.
type NewUser struct {
	Email    string
	Password string
	Name     string
	Roles    []string
	PhotoURL *string
}

// UserPatch is a partial update of a user. Nil fields are left unchanged.
// Profile is merged over the stored profile rather than replacing it.
type UserPatch struct {
	Name          *string
	PhotoURL      *string
	Roles         []string
	IsActive      *bool
	Profile       Profile
	TravelAgentID *string
}

// IsEmpty reports whether the patch would change nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.PhotoURL == nil && p.Roles == nil &&
		p.IsActive == nil && p.Profile == nil && p.TravelAgentID == nil
}

// UserFilter narrows a user listing. Empty fields do not filter.
type UserFilter struct {
	Role          string
	TravelAgentID string
}

// EmailChange is the result of changing a user's email address.
type EmailChange struct {
	UserID   string
	OldEmail string
	NewEmail string
}

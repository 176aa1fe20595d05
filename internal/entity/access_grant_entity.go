package entity

import "github.com/google/uuid"

const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// AccessGrant is the visibility scope resolved once per dashboard load.
// It is derived, never stored.
type AccessGrant struct {
	UserId         uuid.UUID
	IsSuperadmin   bool
	Role           string
	OrganizationId *uuid.UUID
	CustomerIds    []uuid.UUID
}

// CanSee reports whether the tenant falls inside this grant.
func (g *AccessGrant) CanSee(customerId uuid.UUID) bool {
	if g.IsSuperadmin {
		return true
	}
	for _, id := range g.CustomerIds {
		if id == customerId {
			return true
		}
	}
	return false
}

// CanAccessAdmin is the single capability check replacing the scattered
// role comparisons the dashboard used to do per view.
func (g *AccessGrant) CanAccessAdmin() bool {
	return g.IsSuperadmin || g.Role == RoleAdmin || g.Role == RoleOwner
}

// IsEmpty means no grant matched: a valid scope under which no session
// is visible.
func (g *AccessGrant) IsEmpty() bool {
	return !g.IsSuperadmin && len(g.CustomerIds) == 0
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	Id   uuid.UUID
	Name string
}

// Customer is a tenant: one business account whose sessions are isolated
// from every other tenant.
type Customer struct {
	Id             uuid.UUID
	OrganizationId *uuid.UUID
	Name           string
	Plan           string
}

// UserMembership grants a user access to an organization or to a single
// customer. A nil CustomerId means org-level access to every customer
// under the organization.
type UserMembership struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	Role           string
	OrganizationId *uuid.UUID
	CustomerId     *uuid.UUID
}

// DashboardUser is the legacy single-tenant mapping, kept as the access
// fallback and as the login record for staff.
type DashboardUser struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	CustomerId   uuid.UUID
	Email        string
	Role         string
	PasswordHash string
	CreatedAt    time.Time
}

type Superadmin struct {
	Id    uuid.UUID
	Email string
}

type Team struct {
	Id          uuid.UUID
	CustomerId  uuid.UUID
	Name        string
	MemberCount int
}

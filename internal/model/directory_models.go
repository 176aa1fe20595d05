package model

import (
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	Id   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name string    `gorm:"type:text;not null"`
}

func (Organization) TableName() string {
	return "organizations"
}

type Customer struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationId *uuid.UUID `gorm:"type:uuid;index"`
	Name           string     `gorm:"type:text;not null"`
	Plan           string     `gorm:"type:varchar(20);default:'starter'"`
}

func (Customer) TableName() string {
	return "customers"
}

type UserMembership struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID  `gorm:"type:uuid;not null;index"`
	Role           string     `gorm:"type:varchar(20);default:'member'"`
	OrganizationId *uuid.UUID `gorm:"type:uuid"`
	CustomerId     *uuid.UUID `gorm:"type:uuid"` // null means org-level access
}

func (UserMembership) TableName() string {
	return "user_memberships"
}

type DashboardUser struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CustomerId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Email        string    `gorm:"type:text;not null;uniqueIndex"`
	Role         string    `gorm:"type:varchar(20);default:'member'"`
	PasswordHash string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (DashboardUser) TableName() string {
	return "dashboard_users"
}

type Superadmin struct {
	Id    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email string    `gorm:"type:text;not null;uniqueIndex"`
}

func (Superadmin) TableName() string {
	return "superadmins"
}

type Team struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerId  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:text;not null"`
	MemberCount int       `gorm:"default:0"`
}

func (Team) TableName() string {
	return "teams"
}

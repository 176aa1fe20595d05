package dto

import "github.com/google/uuid"

type CustomerResponse struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Plan string    `json:"plan,omitempty"`
}

type AccessResponse struct {
	IsSuperadmin   bool        `json:"is_superadmin"`
	Role           string      `json:"role"`
	OrganizationId *uuid.UUID  `json:"organization_id"`
	CustomerIds    []uuid.UUID `json:"customer_ids"`
}

type DashboardResponse struct {
	Access      AccessResponse     `json:"access"`
	Sessions    []SessionResponse  `json:"sessions"`
	UnreadCount int64              `json:"unread_count"`
	Customers   []CustomerResponse `json:"customers"`
}

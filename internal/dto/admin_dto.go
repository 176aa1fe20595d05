package dto

import "github.com/google/uuid"

type AdminUserResponse struct {
	Id         uuid.UUID `json:"id"`
	UserId     uuid.UUID `json:"user_id"`
	CustomerId uuid.UUID `json:"customer_id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
}

type TeamResponse struct {
	Id          uuid.UUID `json:"id"`
	CustomerId  uuid.UUID `json:"customer_id"`
	Name        string    `json:"name"`
	MemberCount int       `json:"member_count"`
}

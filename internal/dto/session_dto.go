package dto

import (
	"time"

	"github.com/google/uuid"
)

// Session actions accepted by PATCH /api/sessions.
const (
	ActionMarkAsRead    = "markAsRead"
	ActionMarkAsUnread  = "markAsUnread"
	ActionDelete        = "delete"
	ActionAssign        = "assign"
	ActionMarkAllAsRead = "markAllAsRead"
)

type SessionActionData struct {
	ToUserId *uuid.UUID `json:"toUserId"`
	ToTeamId *uuid.UUID `json:"toTeamId"`
}

type SessionActionRequest struct {
	SessionId uuid.UUID          `json:"sessionId" validate:"required"`
	Action    string             `json:"action" validate:"required,oneof=markAsRead markAsUnread delete assign"`
	Data      *SessionActionData `json:"data"`
}

type BulkSessionActionRequest struct {
	Action     string     `json:"action" validate:"required,oneof=markAllAsRead"`
	CustomerId *uuid.UUID `json:"customerId"`
}

type BulkSessionActionResponse struct {
	Updated int64 `json:"updated"`
}

type SessionResponse struct {
	Id             uuid.UUID  `json:"id"`
	CustomerId     uuid.UUID  `json:"customer_id"`
	VisitorId      string     `json:"visitor_id"`
	Status         string     `json:"status"`
	IsRead         bool       `json:"is_read"`
	NeedsHuman     bool       `json:"needs_human"`
	AssignedUserId *uuid.UUID `json:"assigned_user_id"`
	AssignedTeamId *uuid.UUID `json:"assigned_team_id"`
	GuestName      string     `json:"guest_name"`
	GuestEmail     string     `json:"guest_email,omitempty"`
	GuestPhone     string     `json:"guest_phone,omitempty"`
	MessageCount   int        `json:"message_count"`
	SessionStart   time.Time  `json:"session_start"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type SessionListResponse struct {
	Sessions    []SessionResponse `json:"sessions"`
	UnreadCount int64             `json:"unread_count"`
}

type VisitorTypingResponse struct {
	Typing bool `json:"typing"`
}

type SetTypingRequest struct {
	Typing *bool `json:"typing" validate:"required"`
}

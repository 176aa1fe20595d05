package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	SessionStatusActive  = "active"
	SessionStatusClosed  = "closed"
	SessionStatusDeleted = "deleted"
)

// GuestMetadata is the free-form contact block the visitor-facing widget
// attaches to a session.
type GuestMetadata struct {
	GuestName  string `json:"guest_name,omitempty"`
	GuestEmail string `json:"guest_email,omitempty"`
	GuestPhone string `json:"guest_phone,omitempty"`
}

type ChatSession struct {
	Id             uuid.UUID
	CustomerId     uuid.UUID
	VisitorId      string
	Status         string
	IsRead         bool
	NeedsHuman     bool
	AssignedUserId *uuid.UUID
	AssignedTeamId *uuid.UUID
	Suspicious     bool
	Metadata       GuestMetadata
	StaffTyping    bool
	VisitorTyping  bool
	SessionStart   time.Time
	UpdatedAt      time.Time
	MessageCount   int
}

// GuestDisplayName prefers the collected name, then a human-looking
// visitor id, then a generic label.
func (s *ChatSession) GuestDisplayName() string {
	if s.Metadata.GuestName != "" {
		return s.Metadata.GuestName
	}
	if s.VisitorId != "" && !strings.HasPrefix(s.VisitorId, "visitor_") {
		return s.VisitorId
	}
	return "Anonymous visitor"
}

func (s *ChatSession) GuestContact() string {
	if s.Metadata.GuestEmail != "" {
		return s.Metadata.GuestEmail
	}
	return s.Metadata.GuestPhone
}

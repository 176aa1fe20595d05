package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	SenderTypeAI    = "ai"
	SenderTypeHuman = "human"
)

// ChatMessage is one turn in a session. Messages are append-only: never
// mutated after creation, never deleted individually.
type ChatMessage struct {
	Id         uuid.UUID
	SessionId  uuid.UUID
	Role       string
	SenderType string
	Content    string
	Timestamp  time.Time
}

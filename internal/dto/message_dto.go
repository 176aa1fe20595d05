package dto

import (
	"time"

	"github.com/google/uuid"
)

type MessageResponse struct {
	Id         uuid.UUID `json:"id"`
	SessionId  uuid.UUID `json:"session_id"`
	Role       string    `json:"role"`
	SenderType string    `json:"sender_type"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}

type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
}

type ReplyRequest struct {
	SessionId uuid.UUID `json:"sessionId" validate:"required"`
	Message   string    `json:"message" validate:"required"`
}

type ReplyResponse struct {
	Success   bool            `json:"success"`
	Message   MessageResponse `json:"message"`
	EmailSent bool            `json:"emailSent"`
}

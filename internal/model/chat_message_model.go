package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId  uuid.UUID `gorm:"type:uuid;not null;index"`
	Role       string    `gorm:"type:varchar(20);not null"`
	SenderType string    `gorm:"type:varchar(10)"` // meaningful only for role=assistant
	Content    string    `gorm:"type:text;not null"`
	Timestamp  time.Time `gorm:"autoCreateTime;index"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

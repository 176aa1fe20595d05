package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatSession struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerId     uuid.UUID      `gorm:"type:uuid;not null;index"` // Tenant isolation key
	VisitorId      string         `gorm:"type:text"`
	Status         string         `gorm:"type:varchar(20);not null;default:'active';index"`
	IsRead         bool           `gorm:"default:true"`
	NeedsHuman     bool           `gorm:"default:false;index"`
	AssignedUserId *uuid.UUID     `gorm:"type:uuid"`
	AssignedTeamId *uuid.UUID     `gorm:"type:uuid"`
	Suspicious     bool           `gorm:"default:false"`
	Metadata       datatypes.JSON `gorm:"type:jsonb"`
	StaffTyping    bool           `gorm:"default:false"`
	VisitorTyping  bool           `gorm:"default:false"`
	SessionStart   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime;index"`
	MessageCount   int            `gorm:"default:0"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}

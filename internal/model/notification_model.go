package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Notification struct {
	Id                 uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId          uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	Type               string         `gorm:"type:varchar(20);not null"`
	Status             string         `gorm:"type:varchar(10);not null;default:'unread';index"`
	Summary            string         `gorm:"type:text"`
	ReservationDetails datatypes.JSON `gorm:"type:jsonb"`
	GuestName          string         `gorm:"type:text"`
	GuestEmail         string         `gorm:"type:text"`
	GuestPhone         string         `gorm:"type:text"`
	CreatedAt          time.Time      `gorm:"autoCreateTime"`
}

func (Notification) TableName() string {
	return "notifications"
}

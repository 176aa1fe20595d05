package model

import (
	"time"

	"github.com/google/uuid"
)

type PushSubscription struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_push_subs_user_endpoint,priority:1"`
	CustomerId uuid.UUID `gorm:"type:uuid;index"`
	Endpoint   string    `gorm:"type:text;not null;uniqueIndex:idx_push_subs_user_endpoint,priority:2"`
	P256dh     string    `gorm:"type:text;not null"`
	Auth       string    `gorm:"type:text;not null"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (PushSubscription) TableName() string {
	return "push_subscriptions"
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscription is one registered browser endpoint. The (user, endpoint)
// pair is the natural key; a subscription is removed on opt-out or when a
// delivery failure shows the endpoint is permanently gone.
type PushSubscription struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	CustomerId uuid.UUID
	Endpoint   string
	P256dh     string
	Auth       string
	UpdatedAt  time.Time
}
